package engine

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"
)

// World Bank indicator exports carry four metadata lines before the
// real header row, then one column per calendar year.
const (
	StartYear  = 1990
	EndYear    = 2022
	headerSkip = 4

	entityColumn = "Country Name"
)

// Dataset is the pair of views over one loaded indicator. ByEntity has
// countries as rows and years as columns; ByYear is its exact
// transpose. Both are built at load time and read-only afterwards.
type Dataset struct {
	Name     string
	ByEntity *Table
	ByYear   *Table
}

// YearKeys returns the column labels "1990".."2022" in order.
func YearKeys() []string {
	keys := make([]string, 0, EndYear-StartYear+1)
	for y := StartYear; y <= EndYear; y++ {
		keys = append(keys, strconv.Itoa(y))
	}
	return keys
}

// Load reads one indicator CSV from disk.
func Load(name, path string) (*Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer f.Close()

	ds, err := Read(name, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	log.Printf("Loaded %s: %d entities, years %d-%d. Time: %v",
		name, ds.ByEntity.NumRows(), StartYear, EndYear, time.Since(start))
	return ds, nil
}

// Read parses a World Bank indicator export. The first headerSkip
// records are metadata and dropped; the next record is the header. The
// entity-name column is required. Year columns outside StartYear..
// EndYear are discarded; year columns missing from the file leave
// absent cells rather than failing the load. Rows without an entity
// name are unusable and excluded.
func Read(name string, r io.Reader) (*Dataset, error) {
	// The metadata block is skipped line-wise: it contains blank
	// lines, which a csv.Reader would silently drop and throw the
	// count off.
	br := bufio.NewReader(r)
	for i := 0; i < headerSkip; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("metadata row %d: %w", i+1, err)
		}
	}

	cr := csv.NewReader(br)
	// Metadata and data rows differ in field count between files.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	entityIdx := -1
	yearCols := make(map[int]string) // column position -> year key
	for i, col := range header {
		if col == entityColumn {
			entityIdx = i
			continue
		}
		y, err := strconv.Atoi(col)
		if err != nil {
			continue
		}
		if y >= StartYear && y <= EndYear {
			yearCols[i] = col
		}
	}
	if entityIdx < 0 {
		return nil, fmt.Errorf("required column %q missing", entityColumn)
	}

	type row struct {
		entity string
		record []string
	}
	var rows []row
	seen := make(map[string]struct{})
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if entityIdx >= len(rec) || rec[entityIdx] == "" {
			continue
		}
		entity := rec[entityIdx]
		if _, dup := seen[entity]; dup {
			return nil, fmt.Errorf("duplicate entity %q", entity)
		}
		seen[entity] = struct{}{}
		rows = append(rows, row{entity: entity, record: rec})
	}

	entities := make([]string, len(rows))
	for i, rw := range rows {
		entities[i] = rw.entity
	}
	byEntity, err := NewTable(entities, YearKeys())
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		for pos, yearKey := range yearCols {
			if pos >= len(rw.record) {
				continue
			}
			cell := rw.record[pos]
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				// Unparsable measurements stay absent, same as blanks.
				continue
			}
			if err := byEntity.Set(rw.entity, yearKey, v); err != nil {
				return nil, err
			}
		}
	}

	return &Dataset{
		Name:     name,
		ByEntity: byEntity,
		ByYear:   byEntity.Transpose(),
	}, nil
}
