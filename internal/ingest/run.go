package ingest

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
)

// Options control one ingestion run.
type Options struct {
	DataDir string
	Source  string // trikora, bsb, or "all"
	Preview bool   // dry run: print the summary, write nothing
}

// Report summarizes what one run produced.
type Report struct {
	Runs []models.IngestRun
}

// Runner wires the ETL stages to the JSON store and the query store.
// DB may be nil; the JSON files are the contract of record and the sqlite
// store is an optional query index on top of them.
type Runner struct {
	store *dataset.Store
	db    *sql.DB
}

// NewRunner creates a runner writing to the given store and database.
func NewRunner(store *dataset.Store, db *sql.DB) *Runner {
	return &Runner{store: store, db: db}
}

// readSheet loads the grid of one sheet; an empty sheet name means the
// first sheet of the workbook.
func readSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// Run executes the full pipeline for the requested sources plus the shared
// intensity and kepsus workbooks. Missing input files are fatal; malformed
// rows were already skipped with warnings by the extractors.
func (r *Runner) Run(opts Options) (*Report, error) {
	var configs []SourceConfig
	switch opts.Source {
	case models.SourceTrikora:
		configs = []SourceConfig{TrikoraConfig(opts.DataDir)}
	case models.SourceBSB:
		configs = []SourceConfig{BSBConfig(opts.DataDir)}
	case "", "all":
		configs = []SourceConfig{TrikoraConfig(opts.DataDir), BSBConfig(opts.DataDir)}
	default:
		return nil, fmt.Errorf("unknown source %q", opts.Source)
	}

	intensityCfg := DefaultIntensityConfig(opts.DataDir)
	intensityRows, err := readSheet(intensityCfg.Path, intensityCfg.Sheet)
	if err != nil {
		return nil, err
	}
	intensityRecords, intensityLoc := ExtractIntensity(intensityRows, intensityCfg)
	intensityDS := AssembleIntensity(intensityRecords)

	kepsusCfg := DefaultKepsusConfig(opts.DataDir)
	kepsusRows, err := readSheet(kepsusCfg.Path, kepsusCfg.Sheet)
	if err != nil {
		return nil, err
	}
	kepsusRecords, kepsusLoc := ExtractKepsus(kepsusRows, kepsusCfg)

	report := &Report{}
	for _, cfg := range configs {
		rows, err := readSheet(cfg.Path, cfg.Sheet)
		if err != nil {
			return nil, err
		}
		activities, loc := ExtractActivities(rows, cfg)
		ds := AssembleZoning(activities)
		merged := MergeIntensity(ds, intensityRecords)

		run := models.IngestRun{
			ID:               uuid.NewString(),
			Source:           cfg.Name,
			Activities:       len(ds.Activities),
			Zones:            len(ds.Zones),
			IntensityRecords: len(intensityRecords),
			KepsusRecords:    len(kepsusRecords),
			HeaderFallback:   loc.Fallback || intensityLoc.Fallback || kepsusLoc.Fallback,
			CreatedAt:        time.Now().Unix(),
		}
		report.Runs = append(report.Runs, run)

		log.Printf("%s: %d activities, %d zones, %d merged zone records",
			cfg.Name, run.Activities, run.Zones, len(merged))
		if opts.Preview {
			continue
		}

		if err := r.store.WriteZoning(cfg.Name, ds); err != nil {
			return nil, err
		}
		if r.db != nil {
			if err := repository.NewActivityRepository(r.db).ReplaceDataset(cfg.Name, ds); err != nil {
				return nil, err
			}
			if err := repository.NewIngestRunRepository(r.db).Insert(run); err != nil {
				return nil, err
			}
		}
	}

	if !opts.Preview {
		if err := r.store.WriteIntensity(intensityDS); err != nil {
			return nil, err
		}
		if err := r.store.WriteKepsus(&models.KepsusDataset{Data: kepsusRecords}); err != nil {
			return nil, err
		}
		if r.db != nil {
			if err := repository.NewIntensityRepository(r.db).Replace(intensityRecords); err != nil {
				return nil, err
			}
			if err := repository.NewKepsusRepository(r.db).Replace(kepsusRecords); err != nil {
				return nil, err
			}
		}
	}
	return report, nil
}
