package kernel_test

import (
	"testing"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceType(t *testing.T) {
	for _, st := range kernel.ServiceTypes() {
		got, err := kernel.ParseServiceType(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	for _, in := range []string{"crown", "Crown", "CROWNS", ""} {
		_, err := kernel.ParseServiceType(in)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
	}
}

func TestEventRecorder(t *testing.T) {
	var r kernel.EventRecorder
	r.Record(kernel.NewDomainEvent("order.created", "order", kernel.MustNewID(1), fixedTime(), nil))

	events := r.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "order.created", events[0].Name())
	assert.NotEqual(t, [16]byte{}, [16]byte(events[0].ID()))

	r.ClearDomainEvents()
	assert.Empty(t, r.DomainEvents())
}
