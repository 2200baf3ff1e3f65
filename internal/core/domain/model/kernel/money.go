package kernel

import (
	"fmt"

	"dentallab/internal/pkg/errs"
	"dentallab/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	moneyScale      = 2
	percentageScale = 2
)

var (
	ErrMoneyIsNotConstructed      = errs.NewValueIsRequiredError("money must be created via NewMoney")
	ErrPercentageIsNotConstructed = errs.NewValueIsRequiredError("percentage must be created via NewPercentage")

	hundred = decimal.NewFromInt(100)
)

// Money is a non-negative amount rounded half away from zero to two decimal places.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount, 0, "unbounded")
	}
	return Money{amount: amount.Round(moneyScale), guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromString parses a decimal literal such as "499.90".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustNewMoney is NewMoneyFromString for literals known to be valid. It panics otherwise.
func MustNewMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Share returns p percent of m, rounded to two decimal places.
func (m Money) Share(p Percentage) Money {
	return Money{
		amount: m.amount.Mul(p.value).Div(hundred).Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Percentage is a share in the half-open range (0, 100] with at most two decimal places.
type Percentage struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewPercentage(value decimal.Decimal) (Percentage, error) {
	if !value.IsPositive() || value.GreaterThan(hundred) {
		return Percentage{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"percentage", value, "0 (exclusive)", 100, fmt.Errorf("percentage must be in (0, 100]"))
	}
	if !value.Equal(value.Round(percentageScale)) {
		return Percentage{}, errs.NewValueIsInvalidErrorWithCause(
			"percentage", fmt.Errorf("%s has more than %d decimal places", value, percentageScale))
	}
	return Percentage{value: value, guard: guard.NewConstructorGuard()}, nil
}

func NewPercentageFromString(s string) (Percentage, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Percentage{}, errs.NewValueIsInvalidErrorWithCause("percentage", err)
	}
	return NewPercentage(value)
}

func MustNewPercentage(s string) Percentage {
	p, err := NewPercentageFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Percentage) Validate() error {
	return p.guard.Validate(ErrPercentageIsNotConstructed)
}

func (p Percentage) Value() decimal.Decimal {
	return p.value
}

func (p Percentage) String() string {
	return p.value.String()
}
