package engine

import (
	"strconv"

	"github.com/samanqayyum/dhv/internal/models"
)

// Panel selections. The entity order here is presentation order: the
// slices handed to the renderer keep exactly this order.
var (
	// Population growth donut, year 2022.
	GrowthCountries = []string{
		"Ireland", "Australia", "Singapore", "Afghanistan",
		"Angola", "South Africa", "Canada", "Bangladesh", "Algeria",
		"Somalia", "Nigeria",
	}

	// Net migration lines over the full year range.
	MigrationCountries = []string{
		"Pakistan", "Germany", "South Africa", "Congo, Dem. Rep.",
	}

	// Countries with the highest unemployment rates, year 2022.
	UnemploymentCountries = []string{
		"South Africa", "Djibouti", "Eswatini",
		"Congo, Rep.", "Gabon", "Namibia", "Libya",
		"Botswana", "Somalia", "Sudan",
	}

	// CO2 emission bars for one aggregate region.
	EmissionRegion = "Arab World"
)

const (
	snapshotYear = 2022
	emissionFrom = 2000
	emissionTo   = 2020
)

// BuildDashboard selects every panel's slice from the four loaded
// indicators. Any lookup failure aborts the whole build: a partially
// selected dashboard would render a misleading infographic.
func BuildDashboard(growth, migration, emission, unemployment *Dataset) (*models.Dashboard, error) {
	d := &models.Dashboard{}

	growthVals, err := growth.ValuesAt(GrowthCountries, snapshotYear)
	if err != nil {
		return nil, err
	}
	d.PopulationGrowth = sliceValues(GrowthCountries, growthVals)

	migWindow, err := migration.Window(MigrationCountries, StartYear, EndYear)
	if err != nil {
		return nil, err
	}
	d.NetMigration = seriesFrom(migWindow)

	emWindow, err := emission.Window([]string{EmissionRegion}, emissionFrom, emissionTo)
	if err != nil {
		return nil, err
	}
	d.CO2Emission = seriesFrom(emWindow)[0]

	unempVals, err := unemployment.ValuesAt(UnemploymentCountries, snapshotYear)
	if err != nil {
		return nil, err
	}
	d.Unemployment = sliceValues(UnemploymentCountries, unempVals)

	return d, nil
}

// sliceValues pairs entities with their display-rounded values and
// share of the slice total. Inputs are parallel and already in
// presentation order.
func sliceValues(entities []string, values []float64) []models.SliceValue {
	shares := Shares(values)
	out := make([]models.SliceValue, len(entities))
	for i, e := range entities {
		out[i] = models.SliceValue{
			Entity: e,
			Value:  Round2(values[i]),
			Share:  shares[i],
		}
	}
	return out
}

// seriesFrom converts a windowed sub-table into one series per row,
// dropping absent cells.
func seriesFrom(t *Table) []models.Series {
	years := t.ColKeys()
	out := make([]models.Series, 0, t.NumRows())
	for _, entity := range t.RowKeys() {
		s := models.Series{Entity: entity}
		for _, yk := range years {
			v, ok, err := t.Value(entity, yk)
			if err != nil || !ok {
				continue
			}
			y, _ := strconv.Atoi(yk)
			s.Points = append(s.Points, models.SeriesPoint{Year: y, Value: v})
		}
		out = append(out, s)
	}
	return out
}
