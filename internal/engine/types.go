package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ProcessingMethod is the closed set of supported waste processing methods.
type ProcessingMethod string

const (
	MethodBiogas             ProcessingMethod = "Biogas"
	MethodAnaerobicDigestion ProcessingMethod = "Anaerobic Digestion"
	MethodComposting         ProcessingMethod = "Composting"
	MethodVermicompost       ProcessingMethod = "Vermicompost"
	MethodMulching           ProcessingMethod = "Mulching"
	MethodGasification       ProcessingMethod = "Gasification"
	MethodPyrolysis          ProcessingMethod = "Pyrolysis"
	MethodDirectCombustion   ProcessingMethod = "Direct Combustion"
)

// AllMethods lists every supported processing method.
func AllMethods() []ProcessingMethod {
	return []ProcessingMethod{
		MethodBiogas,
		MethodAnaerobicDigestion,
		MethodComposting,
		MethodVermicompost,
		MethodMulching,
		MethodGasification,
		MethodPyrolysis,
		MethodDirectCombustion,
	}
}

// Valid reports whether m belongs to the supported method set.
func (m ProcessingMethod) Valid() bool {
	for _, known := range AllMethods() {
		if m == known {
			return true
		}
	}
	return false
}

// MethodFamily groups processing methods by their operational profile.
type MethodFamily string

const (
	FamilyBiogas  MethodFamily = "biogas"
	FamilyCompost MethodFamily = "compost"
	FamilyThermal MethodFamily = "thermal"
)

// Family returns the method family used for step templates and efficiency.
func (m ProcessingMethod) Family() MethodFamily {
	switch m {
	case MethodBiogas, MethodAnaerobicDigestion:
		return FamilyBiogas
	case MethodGasification, MethodPyrolysis, MethodDirectCombustion:
		return FamilyThermal
	default:
		return FamilyCompost
	}
}

// PriceTier selects a fixed carbon credit rate per kg CO2e.
type PriceTier string

const (
	TierLow  PriceTier = "low"
	TierMid  PriceTier = "mid"
	TierHigh PriceTier = "high"
)

// VerificationLevel indicates how rigorously emission reductions were audited.
type VerificationLevel string

const (
	VerificationBasic    VerificationLevel = "basic"
	VerificationStandard VerificationLevel = "standard"
	VerificationPremium  VerificationLevel = "premium"
)

// MarketTier is the carbon market bucket selected by verification level.
type MarketTier string

const (
	MarketVoluntary  MarketTier = "voluntary"
	MarketCompliance MarketTier = "compliance"
	MarketPremium    MarketTier = "premium"
)

// MoistureClass describes the moisture condition of a waste batch.
type MoistureClass string

const (
	MoistureDry   MoistureClass = "dry"
	MoistureMoist MoistureClass = "moist"
	MoistureWet   MoistureClass = "wet"
)

// Percent maps the moisture class onto the numeric scale used by the
// threshold rules (wet > 60 selects the biogas family, dry < 40 the
// compost family).
func (m MoistureClass) Percent() float64 {
	switch m {
	case MoistureDry:
		return 30
	case MoistureWet:
		return 70
	default:
		return 50
	}
}

// DecompositionSpeed classifies how quickly a waste type breaks down.
type DecompositionSpeed string

const (
	DecompositionFast   DecompositionSpeed = "fast"
	DecompositionMedium DecompositionSpeed = "medium"
	DecompositionSlow   DecompositionSpeed = "slow"
)

// Range is an inclusive numeric interval. Every range produced by the
// engine satisfies Min <= Max with both bounds non-negative.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Mid returns the midpoint of the range. Used wherever the pipeline needs
// a single point estimate from an uncertainty interval.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Scale multiplies both bounds, rounding to two decimal places.
func (r Range) Scale(factor float64) Range {
	return Range{Min: round2(r.Min * factor), Max: round2(r.Max * factor)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WasteProfile holds the static physicochemical attributes of a waste type,
// plus the decision-relevant defaults (typical moisture, climate zone) used
// when a request does not state them.
type WasteProfile struct {
	Type               string             `json:"waste_type"`
	DisplayName        string             `json:"display_name"`
	Category           string             `json:"category"`
	PercentCarbon      float64            `json:"percent_carbon"`
	PercentNitrogen    float64            `json:"percent_nitrogen"`
	CNRatio            float64            `json:"cn_ratio"`
	DecompositionSpeed DecompositionSpeed `json:"decomposition_speed"`
	TypicalMoisture    MoistureClass      `json:"typical_moisture"`
	ClimateZone        string             `json:"climate_zone"`
}

// Errors surfaced by the engine. Lookup misses are never errors; they
// resolve through generic fallbacks or an explicit not-applicable result.
var (
	// ErrNegativeQuantity rejects negative mass inputs outright. Only
	// non-negative out-of-range values are clamped.
	ErrNegativeQuantity = errors.New("quantity must be non-negative")

	// ErrUnknownMethod indicates a method outside the closed set. This is
	// a programming error at the call site, not a domain outcome.
	ErrUnknownMethod = errors.New("unknown processing method")

	// ErrInvalidTables indicates a packaging defect in the static lookup
	// tables. Detected at startup, never per request.
	ErrInvalidTables = errors.New("invalid lookup tables")
)

// Canonicalize maps a free-form waste type label to its canonical
// snake_case key ("Rice Straw" -> "rice_straw").
func Canonicalize(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.Join(strings.Fields(key), "_")
	return key
}

// displayName renders a canonical key for human-readable output.
func displayName(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fmtRange(r Range, unit string) string {
	return fmt.Sprintf("%.2f – %.2f %s", r.Min, r.Max, unit)
}
