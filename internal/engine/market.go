package engine

// Market & eligibility layer. Converts a point estimate of CO2e saved into
// carbon credits and a market valuation. Eligibility minimum is 1.0 tCO2e,
// transaction cost a flat 5%, risk confidence floored at 70.

const (
	eligibilityMinimumTons  = 1.0
	transactionCostRate     = 0.05
	confidenceFloor         = 70
	baseConfidence          = 90
	lowVolumeRiskTons       = 5.0
	smallProjectMaxTons     = 1.0
	mediumProjectMaxTons    = 10.0
)

// marketRate is the fixed pricing for one market tier, per credit.
type marketRate struct {
	Current float64 `json:"current_rate"`
	Range   Range   `json:"rate_range"`
	Label   string  `json:"market_type"`
}

func defaultMarketRates() map[MarketTier]marketRate {
	return map[MarketTier]marketRate{
		MarketVoluntary:  {Current: 1500, Range: Range{800, 2500}, Label: "Voluntary Carbon Market"},
		MarketCompliance: {Current: 4500, Range: Range{2000, 8000}, Label: "Compliance Carbon Market"},
		MarketPremium:    {Current: 7500, Range: Range{3500, 12000}, Label: "Premium Carbon Market"},
	}
}

// Crediting multipliers per processing method. Unlisted methods get 1.0.
func defaultMethodMultipliers() map[ProcessingMethod]float64 {
	return map[ProcessingMethod]float64{
		MethodAnaerobicDigestion: 1.2,
		MethodComposting:         1.0,
		MethodPyrolysis:          1.3,
		MethodGasification:       1.4,
		MethodDirectCombustion:   0.8,
	}
}

// Per-type crediting bonuses. Unlisted types get 1.0.
func defaultWasteBonuses() map[string]float64 {
	return map[string]float64{
		"cow_dung":     1.1,
		"rice_straw":   1.0,
		"wheat_straw":  1.0,
		"corn_stalks":  0.95,
		"cotton_waste": 0.9,
	}
}

// MarketInfo describes the selected market tier and the cost of selling
// into it.
type MarketInfo struct {
	MarketTier      MarketTier `json:"market_tier"`
	MarketType      string     `json:"market_type"`
	CurrentRate     float64    `json:"current_rate"`
	ValueRange      Range      `json:"value_range"`
	TransactionCost float64    `json:"transaction_costs"`
	Currency        string     `json:"currency"`
}

// RiskAssessment accumulates human-readable risk factors with a bounded
// confidence score.
type RiskAssessment struct {
	RiskLevel  string   `json:"risk_level"`
	Confidence float64  `json:"confidence_level"`
	Factors    []string `json:"factors"`
	Mitigation string   `json:"mitigation"`
}

// MarketRecommendation is a market-suitability judgment with static
// pros/cons and a timeline estimate.
type MarketRecommendation struct {
	Market      string   `json:"market"`
	Suitability string   `json:"suitability"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Timeline    string   `json:"timeline"`
}

// MarketResult is the full output of the market & eligibility layer.
type MarketResult struct {
	CO2SavedTons      float64                `json:"co2_saved"`
	WasteType         string                 `json:"waste_type"`
	Method            ProcessingMethod       `json:"processing_method"`
	CreditsEarned     float64                `json:"credits_earned"`
	CreditsUnit       string                 `json:"credits_unit"`
	GrossValue        float64                `json:"gross_value"`
	MarketValue       float64                `json:"market_value"` // net of transaction costs
	Market            MarketInfo             `json:"market_info"`
	Eligible          bool                   `json:"eligible"`
	EligibilityStatus string                 `json:"eligibility_status"`
	Methodology       string                 `json:"verification_methodology"`
	Risk              RiskAssessment         `json:"risk_assessment"`
	Recommendations   []MarketRecommendation `json:"market_recommendations"`
	NextSteps         []string               `json:"next_steps"`
	Timeline          string                 `json:"estimated_timeline"`
}

// MarketValue evaluates carbon credits and market value for a verified
// CO2e saving. Ineligible projects are reported as such with the full
// valuation attached, never silently downgraded or zeroed.
func (e *Engine) MarketValue(co2SavedTons float64, wasteType string, method ProcessingMethod, level VerificationLevel) (*MarketResult, error) {
	if co2SavedTons < 0 {
		return nil, ErrNegativeQuantity
	}
	if !method.Valid() {
		return nil, ErrUnknownMethod
	}

	key := Canonicalize(wasteType)

	methodMult, ok := e.methodMultipliers[method]
	if !ok {
		methodMult = 1.0
	}
	wasteBonus, ok := e.wasteBonuses[key]
	if !ok {
		wasteBonus = 1.0
	}
	credits := round2(co2SavedTons) * methodMult * wasteBonus

	tier := marketTierFor(level)
	rate := e.marketRates[tier]

	gross := round2(credits * rate.Current)
	net := round2(gross * (1 - transactionCostRate))
	valueRange := Range{
		Min: round2(credits * rate.Range.Min * (1 - transactionCostRate)),
		Max: round2(credits * rate.Range.Max * (1 - transactionCostRate)),
	}

	eligible := co2SavedTons >= eligibilityMinimumTons
	status := "Eligible"
	if !eligible {
		status = "Below minimum threshold: at least 1.0 tCO₂e of verified savings is required for credit issuance"
	}

	risk := e.assessRisk(co2SavedTons, key, level)

	return &MarketResult{
		CO2SavedTons:      co2SavedTons,
		WasteType:         key,
		Method:            method,
		CreditsEarned:     round2(credits),
		CreditsUnit:       "tCO₂e",
		GrossValue:        gross,
		MarketValue:       net,
		Market: MarketInfo{
			MarketTier:      tier,
			MarketType:      rate.Label,
			CurrentRate:     rate.Current,
			ValueRange:      valueRange,
			TransactionCost: round2(gross * transactionCostRate),
			Currency:        e.currency,
		},
		Eligible:          eligible,
		EligibilityStatus: status,
		Methodology:       methodologyFor(method),
		Risk:              risk,
		Recommendations:   marketRecommendations(co2SavedTons),
		NextSteps: []string{
			"Document all processing activities and measurements",
			"Choose appropriate verification standard",
			"Register project with carbon registry",
			"Monitor and verify emission reductions",
			"Issue and sell carbon credits",
		},
		Timeline: timelineFor(co2SavedTons),
	}, nil
}

func marketTierFor(level VerificationLevel) MarketTier {
	switch level {
	case VerificationPremium:
		return MarketPremium
	case VerificationStandard:
		return MarketCompliance
	default:
		return MarketVoluntary
	}
}

func methodologyFor(method ProcessingMethod) string {
	switch method.Family() {
	case FamilyBiogas:
		return "AMS-I.C: Thermal energy production with or without electricity"
	case FamilyThermal:
		return "AMS-I.E: Switch from non-renewable biomass for thermal applications"
	default:
		return "AMS-III.F: Avoidance of methane emissions through composting"
	}
}

// assessRisk collects risk factors. Each factor reduces the confidence
// score by a fixed decrement; the score never falls below 70.
func (e *Engine) assessRisk(co2SavedTons float64, wasteType string, level VerificationLevel) RiskAssessment {
	confidence := float64(baseConfidence)
	var factors []string

	if co2SavedTons < smallProjectMaxTons {
		factors = append(factors, "Small project size may have higher verification costs")
		confidence -= 10
	} else if co2SavedTons < lowVolumeRiskTons {
		factors = append(factors, "Low volume may increase per-credit costs")
		confidence -= 5
	}
	if level == VerificationBasic || level == "" {
		factors = append(factors, "Basic verification may limit market access")
		confidence -= 10
	}
	if wasteType == defaultWasteType || wasteType == "mixed_waste" || wasteType == "unknown" {
		factors = append(factors, "Waste type uncertainty may affect verification")
		confidence -= 5
	}

	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}

	riskLevel := "Low"
	if len(factors) > 0 {
		riskLevel = "Medium"
	}

	return RiskAssessment{
		RiskLevel:  riskLevel,
		Confidence: confidence,
		Factors:    factors,
		Mitigation: "Consider pooling with other farmers for better rates",
	}
}

func marketRecommendations(co2SavedTons float64) []MarketRecommendation {
	voluntary := "Medium"
	if co2SavedTons >= smallProjectMaxTons {
		voluntary = "High"
	}
	compliance := "Low"
	if co2SavedTons >= lowVolumeRiskTons {
		compliance = "High"
	}
	return []MarketRecommendation{
		{
			Market:      "Voluntary Carbon Market",
			Suitability: voluntary,
			Pros:        []string{"Lower barriers to entry", "Faster verification"},
			Cons:        []string{"Lower prices", "Market volatility"},
			Timeline:    "6-12 months for registration and verification",
		},
		{
			Market:      "Compliance Market",
			Suitability: compliance,
			Pros:        []string{"Higher prices", "Stable demand"},
			Cons:        []string{"Stricter verification", "Higher costs"},
			Timeline:    "12-24 months for full international verification",
		},
	}
}

func timelineFor(co2SavedTons float64) string {
	if co2SavedTons >= mediumProjectMaxTons {
		return "12-24 months for full verification and credit issuance"
	}
	return "6-12 months for full verification and credit issuance"
}
