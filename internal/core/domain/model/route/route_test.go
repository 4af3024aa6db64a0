package route_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("creates_active_route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 430, 6.5, 50.00, 2.00)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsActive())
		assert.InDelta(t, 50.00, r.BasePrice(), 0.001)
		assert.InDelta(t, 2.00, r.PricePerKg(), 0.001)
	})

	t.Run("rejects_identical_endpoints", func(t *testing.T) {
		loc := kernel.NewUUID()
		_, err := route.NewRoute(kernel.NewUUID(), loc, loc, 430, 6.5, 50.00, 2.00)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_distance_and_time", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, 6.5, 50.00, 2.00)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 430, -1, 50.00, 2.00)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_prices", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 430, 6.5, -1, 2.00)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 430, 6.5, 50.00, -0.5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r route.Route
		require.ErrorIs(t, r.Validate(), route.ErrRouteIsNotConstructed)
	})
}

func TestRoute_Deactivate(t *testing.T) {
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 430, 6.5, 50.00, 2.00)
	require.NoError(t, err)

	r.Deactivate()
	assert.False(t, r.IsActive())

	// Prices stay readable for orders that already reference the route.
	assert.InDelta(t, 50.00, r.BasePrice(), 0.001)
}

func TestRestoreRoute(t *testing.T) {
	t.Run("restores_inactive_route", func(t *testing.T) {
		r, err := route.RestoreRoute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 100, 2, 30.00, 1.25, false)

		require.NoError(t, err)
		assert.False(t, r.IsActive())
	})
}
