package domain

import (
	"fmt"
	"sort"
)

// FreeTables returns the tables not present in the occupied set, preserving
// input order.
func FreeTables(tables []Table, occupied map[string]struct{}) []Table {
	free := make([]Table, 0, len(tables))
	for _, t := range tables {
		if _, ok := occupied[t.ID]; ok {
			continue
		}
		free = append(free, t)
	}
	return free
}

// FitTables filters free tables down to those able to seat the party and
// orders them smallest first, ties broken by id so the pick is deterministic.
func FitTables(free []Table, partySize int) []Table {
	fit := make([]Table, 0, len(free))
	for _, t := range free {
		if t.Seats >= partySize {
			fit = append(fit, t)
		}
	}
	sort.Slice(fit, func(i, j int) bool {
		if fit[i].Seats != fit[j].Seats {
			return fit[i].Seats < fit[j].Seats
		}
		return fit[i].ID < fit[j].ID
	})
	return fit
}

// SelectPreferred validates an explicit table selection against the free set.
// Every requested table must be free and the combined seats must cover the
// party. Used by the admin/override flow; the default path takes the first
// entry of FitTables instead.
func SelectPreferred(free []Table, requested []string, partySize int) ([]Table, error) {
	byID := make(map[string]Table, len(free))
	for _, t := range free {
		byID[t.ID] = t
	}

	chosen := make([]Table, 0, len(requested))
	seats := 0
	for _, id := range requested {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: table %s", ErrTableUnavailable, id)
		}
		chosen = append(chosen, t)
		seats += t.Seats
	}
	if seats < partySize {
		return nil, fmt.Errorf("%w: selected tables seat %d, party is %d", ErrValidation, seats, partySize)
	}
	return chosen, nil
}

// SizeCatalog collapses a table set into its informational size/count pairs,
// smallest size first.
func SizeCatalog(tables []Table) []TableSize {
	counts := make(map[int]int)
	for _, t := range tables {
		counts[t.Seats]++
	}
	catalog := make([]TableSize, 0, len(counts))
	for size, count := range counts {
		catalog = append(catalog, TableSize{Size: size, Count: count})
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Size < catalog[j].Size })
	return catalog
}
