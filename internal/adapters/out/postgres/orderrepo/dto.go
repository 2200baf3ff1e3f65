// Package orderrepo persists order aggregates and their stages with GORM.
// It converts between domain entities and their table rows.
package orderrepo

import (
	"errors"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Stages live in order_stages and are loaded
// through the has-many association.
type OrderDTO struct {
	ID                int64               `gorm:"primaryKey;autoIncrement:false"`
	Code              string              `gorm:"size:20;uniqueIndex:orders_code_key"`
	RequesterID       int64               `gorm:"index"`
	RequesterName     string              `gorm:"size:255"`
	FulfillerID       int64               `gorm:"index"`
	FulfillerName     string              `gorm:"size:255"`
	ServiceType       string              `gorm:"size:32"`
	Status            string              `gorm:"size:32"`
	EntryDate         time.Time           `gorm:"type:date"`
	ExpectedDelivery  *time.Time          `gorm:"type:date"`
	ActualDelivery    *time.Time          `gorm:"type:date"`
	ChargedValue      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	QuotePrice        decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	QuoteLeadTimeDays *int
	Details           string
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
	CancelledAt       *time.Time
	Stages            []StageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// StageDTO is the row of the order_stages table.
type StageDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	OrderID      int64  `gorm:"uniqueIndex:order_stages_order_position_key"`
	Position     int    `gorm:"uniqueIndex:order_stages_order_position_key"`
	Name         string `gorm:"size:255"`
	Observations string
	Status       string    `gorm:"size:32"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	CompletedAt  *time.Time
}

func (StageDTO) TableName() string {
	return "order_stages"
}

func nullDecimal(m *kernel.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Amount())
}

func moneyOf(d decimal.NullDecimal) (*kernel.Money, error) {
	if !d.Valid {
		return nil, nil
	}
	m, err := kernel.NewMoney(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// fromDomain converts an order aggregate, stages included, to its rows.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:               o.ID().Int64(),
		Code:             o.Code().String(),
		RequesterID:      o.Requester().ID().Int64(),
		RequesterName:    o.Requester().Name(),
		FulfillerID:      o.Fulfiller().ID().Int64(),
		FulfillerName:    o.Fulfiller().Name(),
		ServiceType:      o.ServiceType().String(),
		Status:           o.Status().String(),
		EntryDate:        o.EntryDate(),
		ExpectedDelivery: o.ExpectedDelivery(),
		ActualDelivery:   o.ActualDelivery(),
		ChargedValue:     nullDecimal(o.ChargedValue()),
		Details:          o.Details(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		CancelledAt:      o.CancelledAt(),
	}

	if q := o.Quote(); q != nil {
		price := q.Price()
		days := q.LeadTimeDays()
		dto.QuotePrice = nullDecimal(&price)
		dto.QuoteLeadTimeDays = &days
	}

	for _, s := range o.Stages() {
		dto.Stages = append(dto.Stages, StageDTO{
			ID:           s.ID().Int64(),
			OrderID:      dto.ID,
			Position:     s.Position(),
			Name:         s.Name(),
			Observations: s.Observations(),
			Status:       s.Status().String(),
			CreatedAt:    s.CreatedAt(),
			CompletedAt:  s.CompletedAt(),
		})
	}
	return dto
}

// toDomain rebuilds the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	code, err := order.ParseCode(dto.Code)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	serviceType, err := kernel.ParseServiceType(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	requester, err := party(dto.RequesterID, dto.RequesterName)
	if err != nil {
		return nil, err
	}
	fulfiller, err := party(dto.FulfillerID, dto.FulfillerName)
	if err != nil {
		return nil, err
	}
	charged, err := moneyOf(dto.ChargedValue)
	if err != nil {
		return nil, err
	}
	quote, err := quoteOf(dto)
	if err != nil {
		return nil, err
	}

	stages := make([]*order.Stage, 0, len(dto.Stages))
	for _, s := range dto.Stages {
		stage, stageErr := stageToDomain(id, s)
		if stageErr != nil {
			return nil, stageErr
		}
		stages = append(stages, stage)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ID:               id,
			Code:             code,
			Requester:        requester,
			Fulfiller:        fulfiller,
			ServiceType:      serviceType,
			EntryDate:        dto.EntryDate.UTC(),
			ExpectedDelivery: utc(dto.ExpectedDelivery),
			ChargedValue:     charged,
			Quote:            quote,
			Details:          dto.Details,
		},
		Status:         status,
		ActualDelivery: utc(dto.ActualDelivery),
		CancelledAt:    utc(dto.CancelledAt),
		Stages:         stages,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
	})
}

func party(rawID int64, name string) (order.Party, error) {
	id, err := kernel.NewID(rawID)
	if err != nil {
		return order.Party{}, err
	}
	return order.NewParty(id, name)
}

func quoteOf(dto OrderDTO) (*catalog.Terms, error) {
	price, err := moneyOf(dto.QuotePrice)
	if err != nil || price == nil || dto.QuoteLeadTimeDays == nil {
		return nil, err
	}
	terms, err := catalog.NewTerms(*price, *dto.QuoteLeadTimeDays)
	if err != nil {
		return nil, err
	}
	return &terms, nil
}

func stageToDomain(orderID kernel.ID, dto StageDTO) (*order.Stage, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStageStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreStage(id, orderID, dto.Position, dto.Name, dto.Observations, status,
		dto.CreatedAt.UTC(), utc(dto.CompletedAt))
}
