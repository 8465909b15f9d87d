package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAwaitingReceiptOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAwaitingReceiptOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAwaitingReceiptOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAwaitingReceiptOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAwaitingReceiptOrdersQueryIsNotConstructed)
}
