package services_test

import (
	"testing"
	"time"

	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/services"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingResolver_Resolve(t *testing.T) {
	resolver := services.NewPricingResolver()

	t.Run("either policy resolves both modes", func(t *testing.T) {
		o := offering(t, f1, catalog.PolicyEither)

		self, err := resolver.Resolve(o, catalog.ModeSelf)
		require.NoError(t, err)
		delegate, err := resolver.Resolve(o, catalog.ModeDelegate)
		require.NoError(t, err)

		assert.Equal(t, "500.00", self.Price().String())
		assert.Equal(t, 7, self.LeadTimeDays())
		assert.Equal(t, "400.00", delegate.Price().String())
		assert.Equal(t, 10, delegate.LeadTimeDays())
	})

	t.Run("self only refuses delegate mode", func(t *testing.T) {
		_, err := resolver.Resolve(offering(t, f1, catalog.PolicySelfOnly), catalog.ModeDelegate)
		require.ErrorIs(t, err, errs.ErrPolicyMismatch)
	})

	t.Run("not offered refuses both modes", func(t *testing.T) {
		o := offering(t, f1, catalog.PolicyNotOffered)
		_, err := resolver.Resolve(o, catalog.ModeSelf)
		require.ErrorIs(t, err, errs.ErrPolicyMismatch)
		_, err = resolver.Resolve(o, catalog.ModeDelegate)
		require.ErrorIs(t, err, errs.ErrPolicyMismatch)
	})

	t.Run("missing or inactive offering", func(t *testing.T) {
		_, err := resolver.Resolve(nil, catalog.ModeSelf)
		require.ErrorIs(t, err, errs.ErrInvalidServiceOffering)

		o := offering(t, f1, catalog.PolicyEither)
		o.SetActive(false, now)
		_, err = resolver.Resolve(o, catalog.ModeSelf)
		require.ErrorIs(t, err, errs.ErrInvalidServiceOffering)
	})
}

func TestPricingResolver_QuoteOrder(t *testing.T) {
	resolver := services.NewPricingResolver()

	t.Run("catalog price and lead time", func(t *testing.T) {
		q, err := resolver.QuoteOrder(offering(t, f1, catalog.PolicyEither), nil, nil, now)

		require.NoError(t, err)
		require.NotNil(t, q.Terms)
		assert.Equal(t, "500.00", q.ChargedValue.String())
		assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), *q.ExpectedDelivery)
	})

	t.Run("explicit value and date win", func(t *testing.T) {
		explicit := kernel.MustNewMoney("450")
		due := now.AddDate(0, 0, 3)

		q, err := resolver.QuoteOrder(offering(t, f1, catalog.PolicySelfOnly), &explicit, &due, now)

		require.NoError(t, err)
		assert.Equal(t, "450.00", q.ChargedValue.String())
		assert.Equal(t, "500.00", q.Terms.Price().String())
		assert.Equal(t, due, *q.ExpectedDelivery)
	})

	t.Run("delegate only needs an explicit value", func(t *testing.T) {
		o := offering(t, f1, catalog.PolicyDelegateOnly)

		_, err := resolver.QuoteOrder(o, nil, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		explicit := kernel.MustNewMoney("700")
		q, err := resolver.QuoteOrder(o, &explicit, nil, now)
		require.NoError(t, err)
		assert.Nil(t, q.Terms)
		assert.Nil(t, q.ExpectedDelivery)
		assert.Equal(t, "700.00", q.ChargedValue.String())
	})

	t.Run("not offered stays a policy mismatch", func(t *testing.T) {
		explicit := kernel.MustNewMoney("700")
		_, err := resolver.QuoteOrder(offering(t, f1, catalog.PolicyNotOffered), &explicit, nil, now)
		require.ErrorIs(t, err, errs.ErrPolicyMismatch)
	})

	t.Run("no offering", func(t *testing.T) {
		_, err := resolver.QuoteOrder(nil, nil, nil, now)
		require.ErrorIs(t, err, errs.ErrInvalidServiceOffering)
	})
}
