package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tbl(id string, seats int) Table {
	return Table{ID: id, RestaurantID: "r1", Seats: seats}
}

func TestFreeTables(t *testing.T) {
	tables := []Table{tbl("t1", 2), tbl("t2", 4), tbl("t3", 6)}
	occupied := map[string]struct{}{"t2": {}}

	free := FreeTables(tables, occupied)

	require.Len(t, free, 2)
	assert.Equal(t, "t1", free[0].ID)
	assert.Equal(t, "t3", free[1].ID)
}

func TestFitTables_SmallestFirst(t *testing.T) {
	free := []Table{tbl("t6", 6), tbl("t2", 2), tbl("t4", 4)}

	fit := FitTables(free, 3)

	require.Len(t, fit, 2)
	assert.Equal(t, "t4", fit[0].ID)
	assert.Equal(t, "t6", fit[1].ID)
}

func TestFitTables_TieBrokenByID(t *testing.T) {
	free := []Table{tbl("b", 4), tbl("a", 4)}

	fit := FitTables(free, 2)

	require.Len(t, fit, 2)
	assert.Equal(t, "a", fit[0].ID)
}

func TestFitTables_PartyTooLarge(t *testing.T) {
	free := []Table{tbl("t1", 2), tbl("t2", 4)}

	assert.Empty(t, FitTables(free, 10))
}

func TestSelectPreferred_Success(t *testing.T) {
	free := []Table{tbl("t1", 2), tbl("t2", 4)}

	chosen, err := SelectPreferred(free, []string{"t1", "t2"}, 5)

	require.NoError(t, err)
	require.Len(t, chosen, 2)
	assert.Equal(t, "t1", chosen[0].ID)
}

func TestSelectPreferred_TableNotFree(t *testing.T) {
	free := []Table{tbl("t1", 2)}

	_, err := SelectPreferred(free, []string{"t9"}, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTableUnavailable)
}

func TestSelectPreferred_InsufficientSeats(t *testing.T) {
	free := []Table{tbl("t1", 2)}

	_, err := SelectPreferred(free, []string{"t1"}, 4)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSizeCatalog(t *testing.T) {
	tables := []Table{tbl("t1", 4), tbl("t2", 2), tbl("t3", 4)}

	catalog := SizeCatalog(tables)

	require.Len(t, catalog, 2)
	assert.Equal(t, TableSize{Size: 2, Count: 1}, catalog[0])
	assert.Equal(t, TableSize{Size: 4, Count: 2}, catalog[1])
}
