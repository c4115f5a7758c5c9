package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine is the recommendation and estimation pipeline. All lookup tables
// are built once at construction and never mutated afterwards, so a single
// Engine is safe to share across concurrent requests without locking.
type Engine struct {
	logger *zap.Logger

	defaultLocation string
	defaultTier     PriceTier
	currency        string

	keywords     []keywordEntry
	unitPatterns []unitPattern
	sizeTerms    []sizeTerm
	locations    []string

	profiles      map[string]WasteProfile
	categoryTypes map[string][]string
	preferences   map[string]preferenceRule

	savingsFactors map[savingsKey]Range
	outputFactors  map[ProcessingMethod]outputFactor
	creditPrices   map[PriceTier]float64

	burningFactors emissionTable
	biogasFactors  emissionTable
	compostFactors emissionTable
	methaneFactors emissionTable

	marketRates       map[MarketTier]marketRate
	methodMultipliers map[ProcessingMethod]float64
	wasteBonuses      map[string]float64
}

// Options tunes the engine defaults. Zero values fall back to the
// standard configuration.
type Options struct {
	DefaultLocation string
	DefaultTier     PriceTier
	Currency        string
}

// New builds an engine with the built-in lookup tables. It validates the
// tables once; a validation failure is a packaging defect and should abort
// startup.
func New(logger *zap.Logger, opts Options) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultLocation == "" {
		opts.DefaultLocation = "India"
	}
	if opts.DefaultTier == "" {
		opts.DefaultTier = TierMid
	}
	if opts.Currency == "" {
		opts.Currency = "₹"
	}

	e := &Engine{
		logger:          logger,
		defaultLocation: opts.DefaultLocation,
		defaultTier:     opts.DefaultTier,
		currency:        opts.Currency,

		keywords:     defaultKeywordTable(),
		unitPatterns: defaultUnitPatterns(),
		sizeTerms:    defaultSizeTerms(),
		locations:    defaultLocations(),

		profiles:      defaultProfiles(),
		categoryTypes: defaultCategoryTypes(),
		preferences:   defaultPreferences(),

		savingsFactors: defaultSavingsFactors(),
		outputFactors:  defaultOutputFactors(),
		creditPrices:   defaultCreditPrices(),

		burningFactors: defaultBurningFactors(),
		biogasFactors:  defaultBiogasProcessFactors(),
		compostFactors: defaultCompostProcessFactors(),
		methaneFactors: defaultMethaneFactors(),

		marketRates:       defaultMarketRates(),
		methodMultipliers: defaultMethodMultipliers(),
		wasteBonuses:      defaultWasteBonuses(),
	}

	if err := e.validateTables(); err != nil {
		return nil, err
	}

	logger.Info("recommendation engine initialized",
		zap.Int("waste_types", len(e.profiles)),
		zap.Int("savings_factors", len(e.savingsFactors)),
		zap.String("default_tier", string(e.defaultTier)))

	return e, nil
}

// validateTables checks for packaging defects in the static tables.
func (e *Engine) validateTables() error {
	if _, ok := e.creditPrices[e.defaultTier]; !ok {
		return fmt.Errorf("%w: no rate for default price tier %q", ErrInvalidTables, e.defaultTier)
	}
	if _, ok := e.profiles[genericProfileKey]; !ok {
		return fmt.Errorf("%w: missing generic profile %q", ErrInvalidTables, genericProfileKey)
	}
	if _, ok := e.profiles[defaultWasteType]; !ok {
		return fmt.Errorf("%w: missing default waste type %q", ErrInvalidTables, defaultWasteType)
	}
	for key, r := range e.savingsFactors {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%w: bad savings range for %s/%s", ErrInvalidTables, key.wasteType, key.method)
		}
	}
	for method, out := range e.outputFactors {
		if !method.Valid() {
			return fmt.Errorf("%w: output factor for unknown method %q", ErrInvalidTables, method)
		}
		if out.yield.Min < 0 || out.yield.Min > out.yield.Max {
			return fmt.Errorf("%w: bad output range for %s", ErrInvalidTables, method)
		}
	}
	for _, tier := range []MarketTier{MarketVoluntary, MarketCompliance, MarketPremium} {
		if _, ok := e.marketRates[tier]; !ok {
			return fmt.Errorf("%w: missing market rate for tier %q", ErrInvalidTables, tier)
		}
	}
	return nil
}

// DefaultTier returns the configured default price tier.
func (e *Engine) DefaultTier() PriceTier { return e.defaultTier }

// Currency returns the configured currency symbol.
func (e *Engine) Currency() string { return e.currency }

// AnalysisOutcome is the combined result of running the full pipeline on a
// text description: identification, recommendation, impact and market
// valuation.
type AnalysisOutcome struct {
	Identification *Identification `json:"identification"`
	Recommendation *Recommendation `json:"recommendation"`
	Impact         *ImpactResult   `json:"impact"`
	Market         *MarketResult   `json:"market"`
}

// Analyze runs identification, method selection, impact estimation and
// market valuation in sequence. Each stage feeds the next; the market
// stage consumes the midpoint CO2e saving from the impact stage.
func (e *Engine) Analyze(description string, explicitQty *float64, location string, moisture MoistureClass, tier PriceTier, level VerificationLevel) (*AnalysisOutcome, error) {
	ident, err := e.IdentifyFromText(description, explicitQty, location)
	if err != nil {
		return nil, err
	}

	rec, err := e.Recommend(ident.WasteType, ident.QuantityKg, moisture, "")
	if err != nil {
		return nil, err
	}

	impact, err := e.EstimateImpact(ident.WasteType, rec.Method, ident.QuantityKg, tier)
	if err != nil {
		return nil, err
	}

	market, err := e.MarketValue(impact.CO2SavedTons, ident.WasteType, rec.Method, level)
	if err != nil {
		return nil, err
	}

	return &AnalysisOutcome{
		Identification: ident,
		Recommendation: rec,
		Impact:         impact,
		Market:         market,
	}, nil
}
