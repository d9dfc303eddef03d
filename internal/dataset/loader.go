package dataset

import (
	"sync"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// Loader caches datasets in memory for the request path. Data is immutable
// after ingestion, so a read-once cache is safe; Reset exists for tests and
// for picking up a re-ingested file without restarting.
type Loader struct {
	store *Store

	mu        sync.RWMutex
	zoning    map[string]*models.ZoningDataset
	intensity *models.IntensityDataset
	kepsus    *models.KepsusDataset
}

// NewLoader creates a loader over the given store.
func NewLoader(store *Store) *Loader {
	return &Loader{store: store, zoning: make(map[string]*models.ZoningDataset)}
}

// Zoning returns the cached dataset for a source, loading it on first use.
func (l *Loader) Zoning(source string) (*models.ZoningDataset, error) {
	key := zoningFile(source)
	l.mu.RLock()
	ds := l.zoning[key]
	l.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	loaded, err := l.store.LoadZoningData(source)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.zoning[key] = loaded
	l.mu.Unlock()
	return loaded, nil
}

// Intensity returns the cached intensity dataset, loading it on first use.
func (l *Loader) Intensity() (*models.IntensityDataset, error) {
	l.mu.RLock()
	ds := l.intensity
	l.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	loaded, err := l.store.LoadIntensity()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.intensity = loaded
	l.mu.Unlock()
	return loaded, nil
}

// Kepsus returns the cached special-provisions dataset.
func (l *Loader) Kepsus() (*models.KepsusDataset, error) {
	l.mu.RLock()
	ds := l.kepsus
	l.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	loaded, err := l.store.LoadKepsus()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.kepsus = loaded
	l.mu.Unlock()
	return loaded, nil
}

// Reset drops every cached dataset.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zoning = make(map[string]*models.ZoningDataset)
	l.intensity = nil
	l.kepsus = nil
}
