package economy

import (
	"context"
)

// GetPrices returns the full market price list in catalog order. Prices are
// static per deployment, so no database round trip is needed.
func (s *service) GetPrices(_ context.Context) []Price {
	defs := s.catalog.All()
	prices := make([]Price, 0, len(defs))
	for _, def := range defs {
		prices = append(prices, Price{
			Name:        def.Name,
			DisplayName: def.DisplayName,
			BuyPrice:    def.BuyPrice,
			SellPrice:   def.SellPrice,
		})
	}
	return prices
}
