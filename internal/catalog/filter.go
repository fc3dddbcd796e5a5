// Package catalog implements the faceted product filter behind the admin
// product table. Filtering is a pure function over a point-in-time product
// snapshot; the store owns the data and the caller owns the spec.
package catalog

import (
	"strings"

	"github.com/velorashop/backoffice/internal/domain"
)

// PriceRange is a closed interval on selling price, inclusive on both ends
type PriceRange struct {
	Min domain.Money
	Max domain.Money
}

// Spec is the faceted filter specification. An empty search text or an
// empty facet set disables that facet; a nil price range disables the
// price facet. Specs are passed by value and never persisted.
type Spec struct {
	SearchText string
	PriceRange *PriceRange
	Colors     []string
	Materials  []string
	Occasions  []string
}

// IsEmpty reports whether every facet is disabled
func (s Spec) IsEmpty() bool {
	return s.SearchText == "" &&
		s.PriceRange == nil &&
		len(s.Colors) == 0 &&
		len(s.Materials) == 0 &&
		len(s.Occasions) == 0
}

// Filter evaluates the spec against a product snapshot. Facets compose as
// a conjunction evaluated in a single pass; within the occasion facet a
// product matches when at least one requested tag is present. The result
// preserves the input order, and a product with a missing facet value
// simply fails that facet rather than erroring.
func Filter(products []domain.Product, spec Spec) []domain.Product {
	if spec.IsEmpty() {
		out := make([]domain.Product, len(products))
		copy(out, products)
		return out
	}

	search := strings.ToLower(strings.TrimSpace(spec.SearchText))
	colors := toSet(spec.Colors)
	materials := toSet(spec.Materials)
	occasions := toSet(spec.Occasions)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if spec.PriceRange != nil {
			if p.SellingPrice.Cmp(spec.PriceRange.Min) < 0 ||
				p.SellingPrice.Cmp(spec.PriceRange.Max) > 0 {
				continue
			}
		}
		if len(colors) > 0 {
			if _, ok := colors[p.Filter.Color]; !ok {
				continue
			}
		}
		if len(materials) > 0 {
			if _, ok := materials[p.Filter.Material]; !ok {
				continue
			}
		}
		if len(occasions) > 0 && !intersects(occasions, p.Filter.Occasion) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func intersects(set map[string]struct{}, tags []string) bool {
	for _, tag := range tags {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}
