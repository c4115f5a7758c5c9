package engine

import (
	"fmt"
	"math"
	"strings"
)

// ProcessingStep is one step in a method's processing sequence.
type ProcessingStep struct {
	StepNumber    int      `json:"step_number"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	ToolsRequired []string `json:"tools_required"`
}

// Recommendation is the output of the method selector.
type Recommendation struct {
	WasteType       string           `json:"waste_type"`
	QuantityKg      float64          `json:"quantity_kg"`
	Method          ProcessingMethod `json:"recommended_method"`
	Reason          string           `json:"reason"`
	ProcessingSteps []ProcessingStep `json:"processing_steps"`
	ToolsRequired   []string         `json:"tools_required"`
	ProcessingTime  string           `json:"processing_time"`
	Efficiency      float64          `json:"efficiency"`
}

// Quantity threshold separating digester-scale animal waste from
// small-batch vermicomposting. The boundary is inclusive: exactly 50 kg
// selects the biogas-family method.
const smallBatchThresholdKg = 50

// preferenceRule is a per-type method preference. Preferences take
// priority over the generic moisture rules; the quantity- and
// moisture-conditioned entries below make the two orderings observably
// different, so the precedence matters.
type preferenceRule func(quantityKg float64, moisture MoistureClass) ProcessingMethod

func defaultPreferences() map[string]preferenceRule {
	fixed := func(m ProcessingMethod) preferenceRule {
		return func(float64, MoistureClass) ProcessingMethod { return m }
	}
	dungRule := func(qty float64, _ MoistureClass) ProcessingMethod {
		if qty >= smallBatchThresholdKg {
			return MethodBiogas
		}
		return MethodVermicompost
	}
	return map[string]preferenceRule{
		"rice_straw":        fixed(MethodAnaerobicDigestion),
		"wheat_straw":       fixed(MethodGasification),
		"corn_stalks":       fixed(MethodPyrolysis),
		"cotton_waste":      fixed(MethodComposting),
		"sugarcane_bagasse": fixed(MethodDirectCombustion),
		"cow_dung":          dungRule,
		"buffalo_dung":      dungRule,
		"chicken_manure":    dungRule,
		"fruit_veg_peels": func(qty float64, _ MoistureClass) ProcessingMethod {
			if qty <= smallBatchThresholdKg {
				return MethodVermicompost
			}
			return MethodComposting
		},
		"crop_residues": func(_ float64, moisture MoistureClass) ProcessingMethod {
			if moisture == MoistureDry {
				return MethodMulching
			}
			return MethodComposting
		},
	}
}

// Waste-type sets behind the generic category rules. Matched by substring
// against the space-form of the type name.
var (
	biogasPreferredTypes = []string{
		"cow dung", "buffalo dung", "chicken manure", "banana leaves",
		"vegetable scraps", "food waste", "sugarcane bagasse",
	}
	compostPreferredTypes = []string{
		"rice straw", "wheat straw", "cotton stalks", "corn husks",
		"coconut husk", "mustard stalks", "sunflower stalks",
	}
)

const (
	biogasMoistureThreshold  = 60
	compostMoistureThreshold = 40

	biogasBaseEfficiency  = 85
	compostBaseEfficiency = 75
	thermalBaseEfficiency = 80
)

// SelectMethod decides the processing method for a waste batch. Rules are
// evaluated in fixed priority order; the first matching rule wins:
//
//  1. per-type preference table (quantity- and moisture-conditioned)
//  2. high-moisture-preferred type set -> Biogas
//  3. low-moisture-preferred type set -> Composting
//  4. numeric moisture thresholds (>60 biogas, <40 compost)
//  5. substring heuristics on the type name
//  6. default Composting
//
// The function is total: it always returns a member of the closed method
// set and never fails. climateZone is part of the contract but no current
// rule conditions on it; every supported region falls in the same zone.
func (e *Engine) SelectMethod(wasteType string, quantityKg float64, moisture MoistureClass, climateZone string) ProcessingMethod {
	key := Canonicalize(wasteType)
	name := strings.ReplaceAll(key, "_", " ")

	if rule, ok := e.preferences[key]; ok {
		return rule(quantityKg, moisture)
	}

	for _, t := range biogasPreferredTypes {
		if strings.Contains(name, t) {
			return MethodBiogas
		}
	}
	for _, t := range compostPreferredTypes {
		if strings.Contains(name, t) {
			return MethodComposting
		}
	}

	if moisture != "" {
		if moisture.Percent() > biogasMoistureThreshold {
			return MethodBiogas
		}
		if moisture.Percent() < compostMoistureThreshold {
			return MethodComposting
		}
	}

	for _, kw := range []string{"straw", "stalks", "husks"} {
		if strings.Contains(name, kw) {
			return MethodComposting
		}
	}
	for _, kw := range []string{"dung", "manure", "scraps", "leaves"} {
		if strings.Contains(name, kw) {
			return MethodBiogas
		}
	}

	return MethodComposting
}

// Recommend selects a method and assembles the full processing plan for it.
// An empty moisture falls back to the type's typical moisture class.
func (e *Engine) Recommend(wasteType string, quantityKg float64, moisture MoistureClass, climateZone string) (*Recommendation, error) {
	if quantityKg < 0 {
		return nil, ErrNegativeQuantity
	}

	profile := e.Attributes(wasteType)
	if moisture == "" {
		moisture = profile.TypicalMoisture
	}
	if climateZone == "" {
		climateZone = profile.ClimateZone
	}

	method := e.SelectMethod(wasteType, quantityKg, moisture, climateZone)
	family := method.Family()

	return &Recommendation{
		WasteType:       Canonicalize(wasteType),
		QuantityKg:      quantityKg,
		Method:          method,
		Reason:          methodReason(method, displayName(Canonicalize(wasteType))),
		ProcessingSteps: stepsForFamily(family),
		ToolsRequired:   toolsForFamily(family),
		ProcessingTime:  processingTime(method, quantityKg),
		Efficiency:      efficiency(family, quantityKg),
	}, nil
}

// efficiency starts at the family base (85% biogas, 75% compost) and
// scales up with batch size, capped at 95%.
func efficiency(family MethodFamily, quantityKg float64) float64 {
	base := float64(compostBaseEfficiency)
	switch family {
	case FamilyBiogas:
		base = biogasBaseEfficiency
	case FamilyThermal:
		base = thermalBaseEfficiency
	}
	scaled := 70 + quantityKg/100
	return math.Min(95, math.Max(base, scaled))
}

// processingTime estimates how long the method runs at this scale.
func processingTime(method ProcessingMethod, quantityKg float64) string {
	baseTimes := map[ProcessingMethod]float64{
		MethodBiogas:             15, // days
		MethodAnaerobicDigestion: 20,
		MethodGasification:       1, // hours
		MethodPyrolysis:          2,
		MethodDirectCombustion:   0.5,
		MethodComposting:         45,
		MethodVermicompost:       60,
		MethodMulching:           0,
	}

	scale := quantityKg/1000 + 1
	base := baseTimes[method]

	switch method {
	case MethodGasification, MethodPyrolysis, MethodDirectCombustion:
		return fmt.Sprintf("%.1f hours", base*scale)
	case MethodMulching:
		return "Immediate application"
	default:
		return fmt.Sprintf("%.0f days", math.Round(base*scale))
	}
}

func methodReason(method ProcessingMethod, wasteName string) string {
	switch method {
	case MethodBiogas:
		return fmt.Sprintf("Biogas production is optimal for %s of this quantity. The organic matter will generate methane gas suitable for cooking and heating.", wasteName)
	case MethodAnaerobicDigestion:
		return fmt.Sprintf("Anaerobic digestion is ideal for %s. This process breaks down organic matter without oxygen, producing biogas and nutrient-rich slurry.", wasteName)
	case MethodGasification:
		return fmt.Sprintf("Gasification converts %s into synthetic gas (syngas) through high-temperature processing with limited oxygen.", wasteName)
	case MethodPyrolysis:
		return fmt.Sprintf("Pyrolysis breaks down %s at high temperatures without oxygen, producing bio-oil, biochar, and gases.", wasteName)
	case MethodDirectCombustion:
		return fmt.Sprintf("Direct combustion of %s efficiently converts biomass directly into heat and electricity.", wasteName)
	case MethodComposting:
		return fmt.Sprintf("Composting is suitable for %s. Microorganisms break down organic matter into nutrient-rich compost.", wasteName)
	case MethodVermicompost:
		return fmt.Sprintf("Vermicomposting uses earthworms to break down %s into high-quality organic fertilizer.", wasteName)
	case MethodMulching:
		return fmt.Sprintf("Using %s as mulch helps retain soil moisture, suppress weeds, and improve soil health.", wasteName)
	default:
		return fmt.Sprintf("Processing %s using %s is recommended for optimal resource utilization.", wasteName, method)
	}
}
