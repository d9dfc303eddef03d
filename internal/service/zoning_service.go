package service

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/ingest"
	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
)

// ZoningService handles business logic for permitted-use queries. It answers
// from the sqlite query store when one is wired and falls back to filtering
// the JSON dataset in memory otherwise; both paths share the same semantics.
type ZoningService struct {
	repo   *repository.ActivityRepository // nil when no query store is configured
	loader *dataset.Loader
}

// NewZoningService creates a new zoning service
func NewZoningService(repo *repository.ActivityRepository, loader *dataset.Loader) *ZoningService {
	return &ZoningService{repo: repo, loader: loader}
}

// ParseRegulationParams merges the legacy single-combination parameter with
// the semicolon-separated list. The list arrives URL-encoded in old links,
// so it is unescaped before splitting.
func ParseRegulationParams(single, list string) []string {
	var combos []string
	if single != "" {
		combos = append(combos, normalizeCombo(single))
	}
	if list != "" {
		if decoded, err := url.QueryUnescape(list); err == nil {
			list = decoded
		}
		for _, c := range strings.Split(list, ";") {
			if c = normalizeCombo(c); c != "" {
				combos = append(combos, c)
			}
		}
	}
	return combos
}

// normalizeCombo canonicalizes a combination string so "T1, B2" and "T1,B2"
// filter identically.
func normalizeCombo(combo string) string {
	return models.CanonicalPermission(combo)
}

// GetActivities retrieves activities matching the filter along with the
// total match count before pagination.
func (s *ZoningService) GetActivities(filter models.ActivityFilter) ([]models.Activity, int, error) {
	combos := ParseRegulationParams(filter.Regulation, filter.Regulations)

	if s.repo != nil {
		activities, total, err := s.repo.Search(filter, combos)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search activities: %w", err)
		}
		return activities, total, nil
	}
	return s.filterInMemory(filter, combos)
}

// filterInMemory reproduces the browser-side filter over the JSON dataset.
func (s *ZoningService) filterInMemory(filter models.ActivityFilter, combos []string) ([]models.Activity, int, error) {
	ds, err := s.loader.Zoning(filter.DataSource)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load zoning data: %w", err)
	}

	search := strings.ToLower(filter.Search)
	var matched []models.Activity
	for _, act := range ds.Activities {
		if search != "" && !strings.Contains(strings.ToLower(act.Activity), search) {
			continue
		}
		if !matchesZoneAndCombos(act, filter.Zone, combos) {
			continue
		}
		matched = append(matched, act)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.PageSize
		if start > total {
			start = total
		}
		end := start + filter.PageSize
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

// matchesZoneAndCombos checks the zone/regulation part of the filter: with a
// zone selected the activity must carry it (and match one combination, if
// any were requested); without one, any zone entry may match.
func matchesZoneAndCombos(act models.Activity, zone string, combos []string) bool {
	if zone != "" {
		perm, ok := act.Zones[zone]
		if !ok {
			return false
		}
		return len(combos) == 0 || comboIn(perm, combos)
	}
	if len(combos) == 0 {
		return true
	}
	for _, perm := range act.Zones {
		if comboIn(perm, combos) {
			return true
		}
	}
	return false
}

func comboIn(perm string, combos []string) bool {
	norm := normalizeCombo(perm)
	for _, c := range combos {
		if norm == c {
			return true
		}
	}
	return false
}

// GetZones returns the zone list of one source.
func (s *ZoningService) GetZones(source string) ([]string, error) {
	if s.repo != nil {
		zones, err := s.repo.Zones(source)
		if err != nil {
			return nil, fmt.Errorf("failed to get zones: %w", err)
		}
		return zones, nil
	}
	ds, err := s.loader.Zoning(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load zoning data: %w", err)
	}
	return ds.Zones, nil
}

// GetRegulations returns the fixed regulation-code table.
func (s *ZoningService) GetRegulations() map[models.RegulationCode]string {
	return models.RegulationDescriptions()
}

// GetMergedZones unions the source's zones with their intensity counterparts.
func (s *ZoningService) GetMergedZones(source string) ([]models.MergedZone, error) {
	ds, err := s.loader.Zoning(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load zoning data: %w", err)
	}
	intensity, err := s.loader.Intensity()
	if err != nil {
		return nil, fmt.Errorf("failed to load intensity data: %w", err)
	}
	merged := ingest.MergeIntensity(ds, intensity.Data)
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Zone < merged[j].Zone })
	return merged, nil
}
