package zonematch

import (
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// Group collects the Jenis variants of one (Zona, Sub Zona) pair. A group is
// always matched as a whole; the merge layer never splits one intensity
// record across outputs.
type Group struct {
	Zona    string
	SubZona string
	Records []models.IntensityRecord

	zonaN string // Normalize form
	subN  string
	zonaL string // NormalizeLoose form
	subL  string
}

// query is a pre-normalized lookup request.
type query struct {
	zonaN string
	subN  string
	zonaL string
	subL  string
}

// Strategy is one step of the matching cascade. Strategies are tried in
// order; the first non-nil result wins.
type Strategy interface {
	Name() string
	Match(q query, groups []*Group) *Group
}

type exactPair struct{}

func (exactPair) Name() string { return "exact-pair" }
func (exactPair) Match(q query, groups []*Group) *Group {
	for _, g := range groups {
		if g.zonaN == q.zonaN && g.subN == q.subN {
			return g
		}
	}
	return nil
}

type exactSubZona struct{}

func (exactSubZona) Name() string { return "exact-subzona" }
func (exactSubZona) Match(q query, groups []*Group) *Group {
	if q.subN == "" {
		return nil
	}
	for _, g := range groups {
		if g.subN == q.subN {
			return g
		}
	}
	return nil
}

type exactZona struct{}

func (exactZona) Name() string { return "exact-zona" }
func (exactZona) Match(q query, groups []*Group) *Group {
	if q.zonaN == "" {
		return nil
	}
	for _, g := range groups {
		if g.zonaN == q.zonaN {
			return g
		}
	}
	return nil
}

type containsPair struct{}

func (containsPair) Name() string { return "contains-pair" }
func (containsPair) Match(q query, groups []*Group) *Group {
	if q.zonaL == "" || q.subL == "" {
		return nil
	}
	for _, g := range groups {
		if looseContains(g.zonaL, q.zonaL) && looseContains(g.subL, q.subL) {
			return g
		}
	}
	return nil
}

type containsSubZona struct{}

func (containsSubZona) Name() string { return "contains-subzona" }
func (containsSubZona) Match(q query, groups []*Group) *Group {
	if q.subL == "" {
		return nil
	}
	// "perumahan" alone is ambiguous across the three density tiers; the
	// tier pre-check handles those, so substring matching must not.
	if strings.Contains(q.subL, "perumahan") {
		return nil
	}
	for _, g := range groups {
		if looseContains(g.subL, q.subL) {
			return g
		}
	}
	return nil
}

// looseContains reports containment in either direction on loose forms.
func looseContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// densityTiers are checked before the generic cascade for residential
// sub-zones; substring matching would otherwise conflate the tiers.
var densityTiers = []string{"kepadatan tinggi", "kepadatan sedang", "kepadatan rendah"}

// DefaultStrategies returns the cascade from most to least strict.
func DefaultStrategies() []Strategy {
	return []Strategy{exactPair{}, exactSubZona{}, exactZona{}, containsPair{}, containsSubZona{}}
}

// Index holds intensity records grouped by (Zona, Sub Zona) with normalized
// forms precomputed for the cascade.
type Index struct {
	groups     []*Group
	strategies []Strategy
}

// NewIndex groups records in input order. Jenis variants of the same pair
// land in the same group.
func NewIndex(records []models.IntensityRecord) *Index {
	ix := &Index{strategies: DefaultStrategies()}
	byKey := make(map[string]*Group)
	for _, rec := range records {
		key := Normalize(rec.Zona) + "|" + Normalize(rec.SubZona)
		g, ok := byKey[key]
		if !ok {
			g = &Group{
				Zona:    rec.Zona,
				SubZona: rec.SubZona,
				zonaN:   Normalize(rec.Zona),
				subN:    Normalize(rec.SubZona),
				zonaL:   NormalizeLoose(rec.Zona),
				subL:    NormalizeLoose(rec.SubZona),
			}
			byKey[key] = g
			ix.groups = append(ix.groups, g)
		}
		g.Records = append(g.Records, rec)
	}
	return ix
}

// Groups returns the groups in first-seen order.
func (ix *Index) Groups() []*Group { return ix.groups }

// Find resolves a zone/sub-zone pair to its intensity group, or nil when no
// strategy succeeds. The caller treats nil as "no data", never as an error.
func (ix *Index) Find(zona, subZona string) *Group {
	zona = ResolveAlias(zona)
	subZona = ResolveAlias(subZona)
	q := query{
		zonaN: Normalize(zona),
		subN:  Normalize(subZona),
		zonaL: NormalizeLoose(zona),
		subL:  NormalizeLoose(subZona),
	}

	// Residential density tiers first: "Perumahan Kepadatan Tinggi" must
	// never fall through to a sedang/rendah group.
	if strings.Contains(q.subN, "perumahan") || strings.Contains(q.subN, "kepadatan") {
		for _, tier := range densityTiers {
			if !strings.Contains(q.subN, tier) {
				continue
			}
			for _, g := range ix.groups {
				if strings.Contains(g.subN, tier) {
					return g
				}
			}
			// Tier named but absent from the data: report no match
			// rather than risk the generic cascade cross-resolving.
			return nil
		}
	}

	for _, s := range ix.strategies {
		if g := s.Match(q, ix.groups); g != nil {
			return g
		}
	}
	return nil
}

// FindRecord returns the first record of the matched group, or nil.
func (ix *Index) FindRecord(zona, subZona string) *models.IntensityRecord {
	g := ix.Find(zona, subZona)
	if g == nil || len(g.Records) == 0 {
		return nil
	}
	return &g.Records[0]
}
