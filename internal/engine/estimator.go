package engine

import (
	"fmt"
)

// savingsKey keys the GHG savings-factor table by (waste type, method).
type savingsKey struct {
	wasteType string
	method    ProcessingMethod
}

// Savings factors in kg CO2e saved per kg waste, as (min, max) ranges.
func defaultSavingsFactors() map[savingsKey]Range {
	return map[savingsKey]Range{
		{"cow_dung", MethodBiogas}:                     {0.36, 0.45},
		{"cow_dung", MethodComposting}:                 {0.12, 0.18},
		{"cow_dung", MethodVermicompost}:               {0.15, 0.22},
		{"fruit_veg_peels", MethodBiogas}:              {0.32, 0.40},
		{"fruit_veg_peels", MethodComposting}:          {0.14, 0.20},
		{"fruit_veg_peels", MethodVermicompost}:        {0.18, 0.24},
		{"crop_residues", MethodBiogas}:                {0.34, 0.42},
		{"crop_residues", MethodComposting}:            {0.10, 0.14},
		{"crop_residues", MethodVermicompost}:          {0.12, 0.16},
		{"crop_residues", MethodMulching}:              {0.80, 0.80},
		{"rice_straw", MethodAnaerobicDigestion}:       {0.6, 0.7},
		{"rice_straw", MethodGasification}:             {0.8, 0.9},
		{"wheat_straw", MethodGasification}:            {0.7, 0.8},
		{"wheat_straw", MethodComposting}:              {0.3, 0.4},
		{"corn_stalks", MethodPyrolysis}:               {0.9, 1.0},
		{"corn_stalks", MethodBiogas}:                  {0.5, 0.6},
		{"cotton_waste", MethodComposting}:             {0.4, 0.5},
		{"cotton_waste", MethodMulching}:               {0.6, 0.7},
		{"sugarcane_bagasse", MethodDirectCombustion}:  {1.2, 1.4},
		{"sugarcane_bagasse", MethodBiogas}:            {0.7, 0.8},
	}
}

// outputFactor is a physical yield-fraction range with its output unit.
// Independent of the GHG calculation.
type outputFactor struct {
	yield Range
	unit  string
}

func defaultOutputFactors() map[ProcessingMethod]outputFactor {
	return map[ProcessingMethod]outputFactor{
		MethodBiogas:             {Range{0.20, 0.30}, "m³ of biogas"},
		MethodAnaerobicDigestion: {Range{0.25, 0.35}, "m³ of biogas"},
		MethodGasification:       {Range{0.40, 0.50}, "m³ of syngas"},
		MethodPyrolysis:          {Range{0.30, 0.40}, "liters of bio-oil"},
		MethodDirectCombustion:   {Range{0.80, 0.90}, "kWh of energy"},
		MethodComposting:         {Range{0.30, 0.45}, "kg of compost"},
		MethodVermicompost:       {Range{0.60, 0.85}, "kg of vermicompost"},
		MethodMulching:           {Range{1.0, 1.0}, "kg of mulch"},
	}
}

// Credit price per kg CO2e by tier, in the configured currency.
func defaultCreditPrices() map[PriceTier]float64 {
	return map[PriceTier]float64{
		TierLow:  0.50,
		TierMid:  0.85,
		TierHigh: 1.00,
	}
}

// ImpactResult aggregates GHG savings, credit value and physical output
// for a (waste type, method, quantity, tier) combination.
type ImpactResult struct {
	WasteType  string           `json:"waste_type"`
	Method     ProcessingMethod `json:"processing_method"`
	QuantityKg float64          `json:"quantity_kg"`

	// Applicable is false when no savings factor exists for the pair even
	// after the generic fallback. The zero GHG and credit ranges then mean
	// "no data", not "zero savings"; the physical output estimate is keyed
	// by method alone and is still reported.
	Applicable bool `json:"applicable"`

	GHGSavings     Range     `json:"ghg_savings"` // kg CO2e
	GHGSavingsText string    `json:"ghg_savings_range"`
	Credits        Range     `json:"carbon_credit_value"`
	CreditsText    string    `json:"carbon_credit_value_text"`
	RateUsed       float64   `json:"credit_rate_used"`
	Tier           PriceTier `json:"price_tier"`
	Currency       string    `json:"currency"`

	Output     Range  `json:"expected_output"`
	OutputText string `json:"expected_output_range"`
	OutputUnit string `json:"output_unit"`

	// CO2SavedTons is the midpoint GHG saving in tonnes, the point
	// estimate consumed by the market layer.
	CO2SavedTons float64 `json:"co2_saved_tons"`
}

// EstimateImpact computes the GHG savings range, the monetary credit range
// and the expected physical output for a waste/method pair.
//
// Lookup policy: exact (type, method) key first, then the generic
// crop_residues key, then a not-applicable result. The output estimate is
// keyed by method alone and is reported either way. A lookup miss is never
// an error; only a negative quantity or a method outside the closed set is.
func (e *Engine) EstimateImpact(wasteType string, method ProcessingMethod, quantityKg float64, tier PriceTier) (*ImpactResult, error) {
	if quantityKg < 0 {
		return nil, ErrNegativeQuantity
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if tier == "" {
		tier = e.defaultTier
	}
	rate, ok := e.creditPrices[tier]
	if !ok {
		rate = e.creditPrices[e.defaultTier]
		tier = e.defaultTier
	}

	key := Canonicalize(wasteType)
	result := &ImpactResult{
		WasteType:  key,
		Method:     method,
		QuantityKg: quantityKg,
		Tier:       tier,
		RateUsed:   rate,
		Currency:   e.currency,
	}

	if out, ok := e.outputFactors[method]; ok {
		result.Output = out.yield.Scale(quantityKg)
		result.OutputUnit = out.unit
	} else {
		result.Output = Range{0.3, 0.4}.Scale(quantityKg)
		result.OutputUnit = "units of processed waste"
	}
	result.OutputText = fmtRange(result.Output, result.OutputUnit)

	factor, ok := e.savingsFactors[savingsKey{key, method}]
	if !ok {
		factor, ok = e.savingsFactors[savingsKey{genericProfileKey, method}]
	}
	if !ok {
		result.GHGSavingsText = "N/A"
		result.CreditsText = "N/A"
		return result, nil
	}

	result.Applicable = true
	result.GHGSavings = factor.Scale(quantityKg)
	result.Credits = result.GHGSavings.Scale(rate)
	result.GHGSavingsText = fmtRange(result.GHGSavings, "kg CO₂e")
	result.CreditsText = fmt.Sprintf("%s%.2f – %s%.2f", e.currency, result.Credits.Min, e.currency, result.Credits.Max)
	result.CO2SavedTons = round2(result.GHGSavings.Mid()) / 1000

	return result, nil
}
