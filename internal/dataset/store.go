package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// File names of the canonical JSON outputs inside the data directory.
const (
	RDTRFile      = "rdtr-data.json"
	BSBFile       = "bsb-data.json"
	IntensityFile = "intensity-data.json"
	KepsusFile    = "kepsus-data.json"
)

// Store reads and writes the canonical JSON files. The files are the
// contract of record between ingestion and the web layer; re-ingestion fully
// replaces them and nothing updates them in place.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// zoningFile maps a data source name to its JSON file; anything that is not
// "bsb" gets the rdtr default.
func zoningFile(source string) string {
	if source == models.SourceBSB {
		return BSBFile
	}
	return RDTRFile
}

// WriteZoning persists a permitted-use dataset for the given source.
func (s *Store) WriteZoning(source string, ds *models.ZoningDataset) error {
	return s.writeJSON(zoningFile(source), ds)
}

// WriteIntensity persists the intensity dataset.
func (s *Store) WriteIntensity(ds *models.IntensityDataset) error {
	return s.writeJSON(IntensityFile, ds)
}

// WriteKepsus persists the special-provisions dataset.
func (s *Store) WriteKepsus(ds *models.KepsusDataset) error {
	return s.writeJSON(KepsusFile, ds)
}

// LoadZoningData loads the dataset for a source. On any read or parse
// failure of a non-default source it falls back to the rdtr default; only
// when the default itself is unreadable does it return an error.
func (s *Store) LoadZoningData(source string) (*models.ZoningDataset, error) {
	var ds models.ZoningDataset
	if err := s.readJSON(zoningFile(source), &ds); err != nil {
		if zoningFile(source) == RDTRFile {
			return nil, err
		}
		if err := s.readJSON(RDTRFile, &ds); err != nil {
			return nil, err
		}
	}
	return &ds, nil
}

// LoadIntensity loads the intensity dataset.
func (s *Store) LoadIntensity() (*models.IntensityDataset, error) {
	var ds models.IntensityDataset
	if err := s.readJSON(IntensityFile, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadKepsus loads the special-provisions dataset.
func (s *Store) LoadKepsus() (*models.KepsusDataset, error) {
	var ds models.KepsusDataset
	if err := s.readJSON(KepsusFile, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
