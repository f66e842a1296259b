package metrics

type PriceQuote struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

func (q PriceQuote) UnitCost() float64 {
	return safeDiv(q.Price, q.Quantity)
}

type UnitPriceComparison struct {
	CostA float64 `json:"costA"`
	CostB float64 `json:"costB"`
	// Best is "A", "B" or empty when there is nothing to recommend.
	Best string `json:"bestValue,omitempty"`
}

// CompareUnitPrice recommends the cheaper side per unit only when both
// sides have a positive cost. Equal costs recommend B.
func CompareUnitPrice(a, b PriceQuote) UnitPriceComparison {
	result := UnitPriceComparison{CostA: a.UnitCost(), CostB: b.UnitCost()}
	if a.Quantity <= 0 || b.Quantity <= 0 || result.CostA <= 0 || result.CostB <= 0 {
		return result
	}
	if result.CostA < result.CostB {
		result.Best = "A"
	} else {
		result.Best = "B"
	}
	return result
}
