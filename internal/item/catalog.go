package item

import (
	"fmt"
	"sort"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

// Growth describes how a seed item turns into harvestable produce.
type Growth struct {
	// Crop is the item granted at harvest.
	Crop string `json:"crop"`
	// GrowSeconds is the wall-clock time from planting to ready.
	GrowSeconds int `json:"grow_seconds"`
	// StageCount is the number of visual growth stages.
	StageCount int `json:"stage_count"`
	// Yield is the quantity of Crop granted per harvest.
	Yield int `json:"yield"`
	// XPReward is the xp granted per harvest.
	XPReward int `json:"xp_reward"`
}

// Definition is a single catalog entry. BuyPrice nil means the item is not
// sold by the market. Growth non-nil marks the item as a plantable seed.
type Definition struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Description string  `json:"description,omitempty"`
	BuyPrice    *int    `json:"buy_price,omitempty"`
	SellPrice   int     `json:"sell_price"`
	Growth      *Growth `json:"growth,omitempty"`
}

// Buyable reports whether the market sells this item.
func (d Definition) Buyable() bool {
	return d.BuyPrice != nil
}

// Catalog is the immutable in-memory item registry. It is built once at
// startup and shared read-only across all services.
type Catalog struct {
	byName map[string]Definition
	names  []string // sorted, for deterministic listings
}

// NewCatalog builds a catalog from definitions. Definitions are assumed to
// have passed Loader.Validate.
func NewCatalog(defs []Definition) *Catalog {
	byName := make(map[string]Definition, len(defs))
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return &Catalog{byName: byName, names: names}
}

// Get returns the definition for the named item.
func (c *Catalog) Get(name string) (Definition, error) {
	d, ok := c.byName[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
	}
	return d, nil
}

// Seed returns the seed definition for the given crop. The seed item is the
// crop name with the seed suffix and must carry growth data.
func (c *Catalog) Seed(crop string) (Definition, error) {
	d, ok := c.byName[domain.SeedName(crop)]
	if !ok || d.Growth == nil {
		return Definition{}, fmt.Errorf("%w: no seed for crop %s", domain.ErrUnknownItem, crop)
	}
	return d, nil
}

// All returns every definition in name order.
func (c *Catalog) All() []Definition {
	defs := make([]Definition, 0, len(c.names))
	for _, name := range c.names {
		defs = append(defs, c.byName[name])
	}
	return defs
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.byName)
}
