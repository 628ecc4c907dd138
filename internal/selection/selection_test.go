package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/models"
)

func loadBirthRate(t *testing.T) *indicator.Table {
	t.Helper()
	table, err := indicator.Load(models.GetFixturePath(t, "birth_rate.csv"), indicator.DefaultLoadOptions())
	require.NoError(t, err)
	return table
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"Sweden", "Norway"}, Normalize([]string{" Sweden", "", "Norway", "Sweden "}))
	assert.Empty(t, Normalize(nil))
}

func TestIntersect(t *testing.T) {
	available := []string{"Norway", "Sweden", "Switzerland"}

	tests := []struct {
		name     string
		selected []string
		expected []string
	}{
		{"keeps selection order", []string{"Switzerland", "Sweden"}, []string{"Switzerland", "Sweden"}},
		{"drops unknown countries", []string{"Atlantis", "Norway"}, []string{"Norway"}},
		{"empty selection", nil, []string{}},
		{"nothing available", []string{"Atlantis"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Intersect(tt.selected, available))
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, []string{"Sweden", "Switzerland"},
		Defaults([]string{"Norway", "Sweden", "Switzerland"}, []string{"Sweden", "Switzerland"}))
	assert.Equal(t, []string{"Sweden"},
		Defaults([]string{"Sweden"}, []string{"Sweden", "Switzerland"}))
}

func TestFilter(t *testing.T) {
	table := loadBirthRate(t)

	t.Run("country set is selection intersected with available", func(t *testing.T) {
		selected := []string{"Sweden", "Atlantis", "Norway"}
		rows := Filter(table, selected)

		got := make(map[string]bool)
		for _, r := range rows {
			got[r.CountryName] = true
		}
		assert.Equal(t, map[string]bool{"Sweden": true, "Norway": true}, got)
		assert.Len(t, rows, 7)
	})

	t.Run("rows stay ordered by year", func(t *testing.T) {
		rows := Filter(table, []string{"Sweden", "Switzerland"})
		require.Len(t, rows, 8)
		for i := 1; i < len(rows); i++ {
			assert.LessOrEqual(t, rows[i-1].Year, rows[i].Year)
		}
	})

	t.Run("empty selection yields no rows", func(t *testing.T) {
		assert.Empty(t, Filter(table, nil))
	})

	t.Run("selecting Sweden from duplicated rows yields the single valid value", func(t *testing.T) {
		dup, err := indicator.Load(models.GetFixturePath(t, "duplicate_rows.csv"), indicator.DefaultLoadOptions())
		require.NoError(t, err)

		rows := Filter(dup, []string{"Sweden"})
		require.Len(t, rows, 1)
		assert.Equal(t, 1990, rows[0].Year)
		assert.Equal(t, 14.5, rows[0].Value)
	})
}

func TestByCountry(t *testing.T) {
	table := loadBirthRate(t)
	groups := ByCountry(Filter(table, []string{"Sweden", "Norway"}))

	require.Len(t, groups, 2)
	assert.Len(t, groups["Sweden"], 4)
	assert.Len(t, groups["Norway"], 3)
	assert.Equal(t, 1990, groups["Norway"][0].Year)
	assert.Equal(t, 1993, groups["Norway"][2].Year)
}
