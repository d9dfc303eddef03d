package service

import (
	"fmt"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/format"
	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
)

// KepsusView is a special-provision record plus its provision text re-split
// into lettered clauses for display.
type KepsusView struct {
	models.KepsusActivity
	Clauses []string `json:"clauses"`
}

// KepsusService handles business logic for special-provision queries.
type KepsusService struct {
	repo   *repository.KepsusRepository // nil when no query store is configured
	loader *dataset.Loader
}

// NewKepsusService creates a new kepsus service
func NewKepsusService(repo *repository.KepsusRepository, loader *dataset.Loader) *KepsusService {
	return &KepsusService{repo: repo, loader: loader}
}

// GetRecords retrieves matching special-provision records with their
// Ketentuan text split and re-lettered.
func (s *KepsusService) GetRecords(filter models.KepsusFilter) ([]KepsusView, error) {
	records, err := s.load(filter)
	if err != nil {
		return nil, err
	}
	views := make([]KepsusView, len(records))
	for i, rec := range records {
		views[i] = KepsusView{
			KepsusActivity: rec,
			Clauses:        format.FormatLetteredClauses(format.SplitKetentuan(rec.Zones.Ketentuan)),
		}
	}
	return views, nil
}

func (s *KepsusService) load(filter models.KepsusFilter) ([]models.KepsusActivity, error) {
	if s.repo != nil {
		records, err := s.repo.Filter(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to filter kepsus records: %w", err)
		}
		return records, nil
	}

	ds, err := s.loader.Kepsus()
	if err != nil {
		return nil, fmt.Errorf("failed to load kepsus data: %w", err)
	}
	var records []models.KepsusActivity
	for _, rec := range ds.Data {
		if filter.KawasanType != "" && rec.Metadata.KawasanType != filter.KawasanType {
			continue
		}
		if filter.KodeSWP != "" && rec.Metadata.KodeSWP != filter.KodeSWP {
			continue
		}
		if filter.KodeBlok != "" && rec.Metadata.KodeBlok != filter.KodeBlok {
			continue
		}
		if filter.Search != "" && !containsFold(rec.Activity, filter.Search) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
