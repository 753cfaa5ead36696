package engine

import (
	"fmt"
	"math"
	"strconv"
)

// ValuesAt returns one value per requested entity for a single year,
// in exactly the order the caller gave. Consumers zip the result with
// the entity list for legends, so a missing entity is a hard lookup
// failure instead of a silent drop, and a known entity with no
// measurement for that year fails too.
func (d *Dataset) ValuesAt(entities []string, year int) ([]float64, error) {
	if year < StartYear || year > EndYear {
		return nil, fmt.Errorf("year %d: %w", year, ErrYearOutOfRange)
	}
	yearKey := strconv.Itoa(year)
	out := make([]float64, 0, len(entities))
	for _, e := range entities {
		v, ok, err := d.ByEntity.Value(e, yearKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %s in %d: %w", d.Name, e, year, ErrValueAbsent)
		}
		out = append(out, v)
	}
	return out, nil
}

// Window returns the sub-table of the requested entities over the
// inclusive year range [from, to]. Rows follow the caller's entity
// order. Cells absent in the source stay absent in the result.
func (d *Dataset) Window(entities []string, from, to int) (*Table, error) {
	if from < StartYear || to > EndYear {
		return nil, fmt.Errorf("range %d-%d: %w", from, to, ErrYearOutOfRange)
	}
	if from > to {
		return nil, fmt.Errorf("range %d-%d: from after to", from, to)
	}
	for _, e := range entities {
		if !d.ByEntity.HasRow(e) {
			return nil, fmt.Errorf("%s: entity %q: %w", d.Name, e, ErrEntityNotFound)
		}
	}

	years := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, strconv.Itoa(y))
	}
	sub, err := NewTable(entities, years)
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		for _, yk := range years {
			v, ok, err := d.ByEntity.Value(e, yk)
			if err != nil {
				return nil, err
			}
			if ok {
				if err := sub.Set(e, yk, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return sub, nil
}

// Shares expresses each value as its percentage of the slice total,
// rounded to one decimal place. A zero (or negative-cancelling) total
// has no meaningful shares; that case yields all zeros rather than a
// division fault.
func Shares(values []float64) []float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	out := make([]float64, len(values))
	if sum == 0 {
		return out
	}
	for i, v := range values {
		out[i] = Round1(v / sum * 100)
	}
	return out
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, half away from zero
// (math.Round semantics, not banker's rounding).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
