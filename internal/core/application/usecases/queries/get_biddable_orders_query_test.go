package queries_test

import (
	"testing"

	"cctexpress/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBiddableOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetBiddableOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetBiddableOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBiddableOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBiddableOrdersQueryIsNotConstructed)
}
