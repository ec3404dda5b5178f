package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Material is the derived per-name stock pool: all non-tool batches sharing
// a normalized name, with their combined stock and weighted-average price.
// It holds no independent identity and is recomputed on every read.
type Material struct {
	Name       string          `json:"name"`
	SearchKey  string          `json:"searchKey"`
	Unit       string          `json:"unit"`
	Type       ItemType        `json:"type"`
	TotalStock decimal.Decimal `json:"totalStock"`
	// AvgUnitPrice is weighted by remaining stock over batches with positive
	// stock; when every batch of the name is empty it falls back to the unit
	// price of the most recently examined empty batch.
	AvgUnitPrice decimal.Decimal `json:"avgPrice"`
}

// AggregateMaterials derives the material list from the batch collection.
// Tool batches are excluded. The result is stable-sorted by type; within a
// type, materials keep first-appearance order. Pure function.
func AggregateMaterials(batches []*Batch) []Material {
	type group struct {
		material    Material
		weightedSum decimal.Decimal
		stockForAvg decimal.Decimal
		lastPrice   decimal.Decimal
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, b := range batches {
		if b.Type == ItemTypeTool {
			continue
		}
		key := NormalizeName(b.Name)
		g, ok := groups[key]
		if !ok {
			g = &group{material: Material{
				Name:      DisplayName(b.Name),
				SearchKey: key,
				Unit:      b.Unit,
				Type:      b.Type,
			}}
			groups[key] = g
			order = append(order, key)
		}
		g.material.TotalStock = g.material.TotalStock.Add(b.CurrentStock)
		unitPrice := b.UnitPrice()
		if b.HasStock() {
			g.weightedSum = g.weightedSum.Add(b.CurrentStock.Mul(unitPrice))
			g.stockForAvg = g.stockForAvg.Add(b.CurrentStock)
		} else {
			g.lastPrice = unitPrice
		}
	}

	materials := make([]Material, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.stockForAvg.GreaterThan(decimal.Zero) {
			g.material.AvgUnitPrice = g.weightedSum.Div(g.stockForAvg)
		} else {
			g.material.AvgUnitPrice = g.lastPrice
		}
		materials = append(materials, g.material)
	}

	sort.SliceStable(materials, func(i, j int) bool {
		return materials[i].Type < materials[j].Type
	})
	return materials
}

// FindMaterial looks up an aggregated material by normalized name
func FindMaterial(materials []Material, name string) (Material, bool) {
	key := NormalizeName(name)
	for _, m := range materials {
		if m.SearchKey == key {
			return m, true
		}
	}
	return Material{}, false
}
