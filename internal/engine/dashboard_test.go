package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullDataset builds a dataset where every listed entity has a value
// for every year in [from, to].
func fullDataset(t *testing.T, entities []string, from, to int, value func(entity string, year int) float64) *Dataset {
	t.Helper()
	tbl, err := NewTable(entities, YearKeys())
	require.NoError(t, err)
	for _, e := range entities {
		for y := from; y <= to; y++ {
			require.NoError(t, tbl.Set(e, strconv.Itoa(y), value(e, y)))
		}
	}
	return &Dataset{Name: "test", ByEntity: tbl, ByYear: tbl.Transpose()}
}

func TestBuildDashboard(t *testing.T) {
	// 1. Setup: one dataset per indicator covering the panel entities.
	growth := fullDataset(t, GrowthCountries, 2022, 2022,
		func(e string, _ int) float64 { return float64(len(e)) })
	migration := fullDataset(t, MigrationCountries, StartYear, EndYear,
		func(_ string, y int) float64 { return float64(y - 2000) })
	emission := fullDataset(t, []string{EmissionRegion}, StartYear, EndYear,
		func(_ string, y int) float64 { return float64(y) })
	unemployment := fullDataset(t, UnemploymentCountries, 2022, 2022,
		func(_ string, _ int) float64 { return 5 })

	// 2. Run
	d, err := BuildDashboard(growth, migration, emission, unemployment)
	require.NoError(t, err)

	// 3. Assertions
	require.Len(t, d.PopulationGrowth, len(GrowthCountries))
	for i, sv := range d.PopulationGrowth {
		assert.Equal(t, GrowthCountries[i], sv.Entity, "presentation order")
	}

	require.Len(t, d.NetMigration, len(MigrationCountries))
	assert.Equal(t, MigrationCountries[0], d.NetMigration[0].Entity)
	assert.Len(t, d.NetMigration[0].Points, EndYear-StartYear+1)
	assert.Equal(t, StartYear, d.NetMigration[0].Points[0].Year)

	assert.Equal(t, EmissionRegion, d.CO2Emission.Entity)
	require.Len(t, d.CO2Emission.Points, 21) // 2000..2020 inclusive
	assert.Equal(t, 2000, d.CO2Emission.Points[0].Year)
	assert.Equal(t, 2020, d.CO2Emission.Points[20].Year)

	require.Len(t, d.Unemployment, len(UnemploymentCountries))
	// Equal values: every entity holds an equal share.
	assert.InDelta(t, 10.0, d.Unemployment[0].Share, 0.01)
}

func TestBuildDashboardShares(t *testing.T) {
	var sum float64
	d, err := BuildDashboard(
		fullDataset(t, GrowthCountries, 2022, 2022,
			func(_ string, _ int) float64 { return 1 }),
		fullDataset(t, MigrationCountries, StartYear, EndYear,
			func(_ string, _ int) float64 { return 1 }),
		fullDataset(t, []string{EmissionRegion}, StartYear, EndYear,
			func(_ string, _ int) float64 { return 1 }),
		fullDataset(t, UnemploymentCountries, 2022, 2022,
			func(_ string, _ int) float64 { return 1 }),
	)
	require.NoError(t, err)
	for _, sv := range d.PopulationGrowth {
		sum += sv.Share
	}
	assert.InDelta(t, 100.0, sum, 0.2)
}

func TestBuildDashboardMissingCountry(t *testing.T) {
	// Growth dataset lacks one of the panel countries.
	short := append([]string(nil), GrowthCountries[:len(GrowthCountries)-1]...)
	growth := fullDataset(t, short, 2022, 2022,
		func(_ string, _ int) float64 { return 1 })
	rest := func(entities []string) *Dataset {
		return fullDataset(t, entities, StartYear, EndYear,
			func(_ string, _ int) float64 { return 1 })
	}

	_, err := BuildDashboard(growth, rest(MigrationCountries),
		rest([]string{EmissionRegion}), rest(UnemploymentCountries))
	require.ErrorIs(t, err, ErrEntityNotFound)
}
