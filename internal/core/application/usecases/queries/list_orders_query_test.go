package queries_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should create unfiltered query", func(t *testing.T) {
		query := queries.NewListOrdersQuery()

		require.NoError(t, query.Validate())
		assert.Nil(t, query.State())
	})

	t.Run("should record state filter", func(t *testing.T) {
		query := queries.NewListOrdersQuery().WithState("DISPATCHED")

		require.NoError(t, query.Validate())
		require.NotNil(t, query.State())
		assert.Equal(t, "DISPATCHED", *query.State())
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		var query queries.ListOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderByCodeQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetOrderByCodeQuery("PED-2024-001")

		require.NoError(t, err)
		assert.Equal(t, "PED-2024-001", query.Code())
		require.NoError(t, query.Validate())
	})

	t.Run("should reject empty code", func(t *testing.T) {
		_, err := queries.NewGetOrderByCodeQuery("")
		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrQueryCodeIsRequired)
	})

	t.Run("should reject zero-value query", func(t *testing.T) {
		var query queries.GetOrderByCodeQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderByCodeQueryIsNotConstructed)
	})
}
