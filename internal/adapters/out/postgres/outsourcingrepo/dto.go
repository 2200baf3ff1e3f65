// Package outsourcingrepo persists outsourcing requests with GORM.
package outsourcingrepo

import (
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/outsourcing"

	"github.com/shopspring/decimal"
)

// RequestDTO is the row of the outsourcing_requests table. A partial unique index on order_id
// covers the active statuses.
type RequestDTO struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID               int64           `gorm:"index"`
	RequestingFulfillerID int64           `gorm:"index"`
	ExecutingFulfillerID  int64           `gorm:"index"`
	Percentage            decimal.Decimal `gorm:"type:numeric(5,2)"`
	Kind                  string          `gorm:"size:32"`
	ServiceDescription    string
	Rationale             string
	ClosingNote           string
	Status                string    `gorm:"size:32"`
	CreatedAt             time.Time `gorm:"autoCreateTime:false"`
	RespondedAt           *time.Time
	StartedAt             *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
}

func (RequestDTO) TableName() string {
	return "outsourcing_requests"
}

func fromDomain(r *outsourcing.Request) RequestDTO {
	return RequestDTO{
		ID:                    r.ID().Int64(),
		OrderID:               r.OrderID().Int64(),
		RequestingFulfillerID: r.RequestingFulfillerID().Int64(),
		ExecutingFulfillerID:  r.ExecutingFulfillerID().Int64(),
		Percentage:            r.Percentage().Value(),
		Kind:                  string(r.Kind()),
		ServiceDescription:    r.ServiceDescription(),
		Rationale:             r.Rationale(),
		ClosingNote:           r.ClosingNote(),
		Status:                r.Status().String(),
		CreatedAt:             r.CreatedAt(),
		RespondedAt:           r.RespondedAt(),
		StartedAt:             r.StartedAt(),
		CompletedAt:           r.CompletedAt(),
		CancelledAt:           r.CancelledAt(),
	}
}

func toDomain(dto RequestDTO) (*outsourcing.Request, error) {
	ids := make([]kernel.ID, 0, 4)
	for _, raw := range []int64{dto.ID, dto.OrderID, dto.RequestingFulfillerID, dto.ExecutingFulfillerID} {
		id, err := kernel.NewID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	percentage, err := kernel.NewPercentage(dto.Percentage)
	if err != nil {
		return nil, err
	}
	kind, err := outsourcing.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := outsourcing.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return outsourcing.RestoreRequest(outsourcing.RestoreRequestParams{
		NewRequestParams: outsourcing.NewRequestParams{
			ID:                    ids[0],
			OrderID:               ids[1],
			RequestingFulfillerID: ids[2],
			ExecutingFulfillerID:  ids[3],
			Percentage:            percentage,
			Kind:                  kind,
			ServiceDescription:    dto.ServiceDescription,
			Rationale:             dto.Rationale,
		},
		Status:      status,
		ClosingNote: dto.ClosingNote,
		CreatedAt:   dto.CreatedAt.UTC(),
		RespondedAt: utc(dto.RespondedAt),
		StartedAt:   utc(dto.StartedAt),
		CompletedAt: utc(dto.CompletedAt),
		CancelledAt: utc(dto.CancelledAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
