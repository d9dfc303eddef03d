package service

import (
	"fmt"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/format"
	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
	"github.com/jengzang/rdtr-backend-go/internal/zonematch"
)

// IntensityService handles business logic for building-intensity queries.
type IntensityService struct {
	repo   *repository.IntensityRepository // nil when no query store is configured
	loader *dataset.Loader
}

// NewIntensityService creates a new intensity service
func NewIntensityService(repo *repository.IntensityRepository, loader *dataset.Loader) *IntensityService {
	return &IntensityService{repo: repo, loader: loader}
}

// GetRecords retrieves intensity records matching the exact-value filter.
func (s *IntensityService) GetRecords(filter models.IntensityFilter) ([]models.IntensityRecord, error) {
	if s.repo != nil {
		records, err := s.repo.Filter(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to filter intensity records: %w", err)
		}
		return records, nil
	}

	ds, err := s.loader.Intensity()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity data: %w", err)
	}
	var records []models.IntensityRecord
	for _, rec := range ds.Data {
		if filter.Zona != "" && rec.Zona != filter.Zona {
			continue
		}
		if filter.SubZona != "" && rec.SubZona != filter.SubZona {
			continue
		}
		if filter.Jenis != "" && rec.Jenis != filter.Jenis {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetFilterLists returns the filter options derived from the data.
func (s *IntensityService) GetFilterLists() (*models.IntensityFilterLists, error) {
	if s.repo != nil {
		lists, err := s.repo.FilterLists()
		if err != nil {
			return nil, fmt.Errorf("failed to get filter lists: %w", err)
		}
		return lists, nil
	}
	ds, err := s.loader.Intensity()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity data: %w", err)
	}
	lists := ds.Filters
	return &lists, nil
}

// allRecords loads the full record set from whichever backend is wired, so
// every read path works on a server configured with only the query store.
func (s *IntensityService) allRecords() ([]models.IntensityRecord, error) {
	if s.repo != nil {
		records, err := s.repo.Filter(models.IntensityFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to load intensity records: %w", err)
		}
		return records, nil
	}
	ds, err := s.loader.Intensity()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity data: %w", err)
	}
	return ds.Data, nil
}

// GetFormattedText resolves a zone through the matching cascade and renders
// its intensity provisions as the copyable text block. An unresolvable name
// yields the dash placeholder, never an error.
func (s *IntensityService) GetFormattedText(zona, subZona string) (string, error) {
	records, err := s.allRecords()
	if err != nil {
		return "", err
	}
	ix := zonematch.NewIndex(records)
	g := ix.Find(zona, subZona)
	if g == nil {
		return "-", nil
	}
	zone := g.SubZona
	if zone == "" {
		zone = g.Zona
	}
	return format.FormatIntensityText(g.Records, zone), nil
}

// GetSummary returns the dataset summary counts. On the query-store path
// they are recomputed from the stored rows.
func (s *IntensityService) GetSummary() (*models.IntensitySummary, error) {
	if s.repo != nil {
		records, err := s.allRecords()
		if err != nil {
			return nil, err
		}
		lists, err := s.repo.FilterLists()
		if err != nil {
			return nil, fmt.Errorf("failed to get filter lists: %w", err)
		}
		return &models.IntensitySummary{
			TotalRecords: len(records),
			TotalZona:    len(lists.ZonaList),
			TotalSubZona: len(lists.SubZonaList),
		}, nil
	}
	ds, err := s.loader.Intensity()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity data: %w", err)
	}
	summary := ds.Summary
	return &summary, nil
}
