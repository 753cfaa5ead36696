package engine

import (
	"path/filepath"

	"github.com/samanqayyum/dhv/internal/models"
)

// The four indicator exports a run consumes, by their World Bank
// download names.
const (
	GrowthFile       = "Population_Growth.csv"
	MigrationFile    = "Net_Migration.csv"
	EmissionFile     = "CO2_Emission.csv"
	UnemploymentFile = "Unemployment.csv"
)

// Batch holds all four loaded indicators for one run.
type Batch struct {
	Growth       *Dataset
	Migration    *Dataset
	Emission     *Dataset
	Unemployment *Dataset
}

// LoadAll loads the four indicator files from dir, sequentially. The
// first failure aborts the batch; there is no partial-success mode.
func LoadAll(dir string) (*Batch, error) {
	growth, err := Load("population growth", filepath.Join(dir, GrowthFile))
	if err != nil {
		return nil, err
	}
	migration, err := Load("net migration", filepath.Join(dir, MigrationFile))
	if err != nil {
		return nil, err
	}
	emission, err := Load("co2 emission", filepath.Join(dir, EmissionFile))
	if err != nil {
		return nil, err
	}
	unemployment, err := Load("unemployment", filepath.Join(dir, UnemploymentFile))
	if err != nil {
		return nil, err
	}
	return &Batch{
		Growth:       growth,
		Migration:    migration,
		Emission:     emission,
		Unemployment: unemployment,
	}, nil
}

// Dashboard builds the per-panel selections from the batch.
func (b *Batch) Dashboard() (*models.Dashboard, error) {
	return BuildDashboard(b.Growth, b.Migration, b.Emission, b.Unemployment)
}
