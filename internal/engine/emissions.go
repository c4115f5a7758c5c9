package engine

import (
	"math"
	"strings"
)

// Avoided-emissions path: IPCC-style emission factors compared between
// open burning and controlled processing, plus avoided methane from
// anaerobic decomposition. This is the secondary computation path; the
// savings-factor ranges in EstimateImpact are the canonical one. Both are
// kept because they answer different questions: EstimateImpact reports an
// uncertainty range per method, AvoidedEmissions decomposes a single
// baseline-vs-project comparison.

// CH4 global-warming-potential multiplier (kg CO2e per kg CH4).
const methaneGWP = 25

// Factors in tonnes CO2e per kg waste, keyed by waste type name in space
// form. Lookup is by partial match in declaration order with a trailing
// "default" fallback; the slice keeps lookups deterministic.
type emissionFactor struct {
	name   string
	factor float64
}

type emissionTable []emissionFactor

func defaultBurningFactors() emissionTable {
	return emissionTable{
		{"rice straw", 0.0012},
		{"wheat straw", 0.0011},
		{"corn husks", 0.0010},
		{"sugarcane bagasse", 0.0009},
		{"cotton stalks", 0.0013},
		{"banana leaves", 0.0008},
		{"cow dung", 0.0015},
		{"buffalo dung", 0.0014},
		{"chicken manure", 0.0016},
		{"vegetable scraps", 0.0007},
		{"food waste", 0.0006},
		{"default", 0.0012},
	}
}

func defaultBiogasProcessFactors() emissionTable {
	return emissionTable{
		{"rice straw", 0.0002},
		{"wheat straw", 0.0003},
		{"corn husks", 0.0002},
		{"sugarcane bagasse", 0.0001},
		{"cotton stalks", 0.0003},
		{"banana leaves", 0.0001},
		{"cow dung", 0.0001},
		{"buffalo dung", 0.0001},
		{"chicken manure", 0.0002},
		{"vegetable scraps", 0.0001},
		{"food waste", 0.0001},
		{"default", 0.0002},
	}
}

func defaultCompostProcessFactors() emissionTable {
	return emissionTable{
		{"rice straw", 0.0003},
		{"wheat straw", 0.0004},
		{"corn husks", 0.0003},
		{"sugarcane bagasse", 0.0002},
		{"cotton stalks", 0.0004},
		{"banana leaves", 0.0002},
		{"cow dung", 0.0003},
		{"buffalo dung", 0.0003},
		{"chicken manure", 0.0004},
		{"vegetable scraps", 0.0002},
		{"food waste", 0.0002},
		{"default", 0.0003},
	}
}

// Methane from uncontrolled anaerobic decomposition, kg CH4 per kg waste.
func defaultMethaneFactors() emissionTable {
	return emissionTable{
		{"rice straw", 0.0025},
		{"wheat straw", 0.0023},
		{"corn husks", 0.0020},
		{"sugarcane bagasse", 0.0018},
		{"cotton stalks", 0.0025},
		{"banana leaves", 0.0015},
		{"cow dung", 0.0030},
		{"buffalo dung", 0.0028},
		{"chicken manure", 0.0035},
		{"vegetable scraps", 0.0020},
		{"food waste", 0.0025},
		{"default", 0.0025},
	}
}

// lookup finds a factor by partial name match, falling back to "default".
func (t emissionTable) lookup(wasteType string) float64 {
	name := strings.ReplaceAll(Canonicalize(wasteType), "_", " ")
	var fallback float64
	for _, e := range t {
		if e.name == "default" {
			fallback = e.factor
			continue
		}
		if strings.Contains(name, e.name) || strings.Contains(e.name, name) {
			return e.factor
		}
	}
	return fallback
}

// AvoidedEmissions decomposes the CO2e saved by processing instead of
// burning or letting the waste decompose anaerobically. All values in
// tonnes CO2e.
type AvoidedEmissions struct {
	BurningEmissions    float64 `json:"burning_emissions"`
	ProcessingEmissions float64 `json:"processing_emissions"`
	DirectCO2Saved      float64 `json:"direct_co2_saved"`
	MethaneAvoided      float64 `json:"methane_emissions_avoided"`
	TotalCO2Saved       float64 `json:"total_co2_saved"`
}

// ComputeAvoidedEmissions compares burning against the processing route.
// The methane term is computed independently and then added; it must not
// be folded into the per-kg processing factor.
func (e *Engine) ComputeAvoidedEmissions(wasteType string, quantityKg float64, method ProcessingMethod) AvoidedEmissions {
	burningEF := e.burningFactors.lookup(wasteType)

	var processingEF float64
	if method.Family() == FamilyBiogas {
		processingEF = e.biogasFactors.lookup(wasteType)
	} else {
		processingEF = e.compostFactors.lookup(wasteType)
	}

	burning := quantityKg * burningEF
	processing := quantityKg * processingEF
	direct := burning - processing

	methaneEF := e.methaneFactors.lookup(wasteType)
	methaneAvoided := quantityKg * methaneEF * methaneGWP

	return AvoidedEmissions{
		BurningEmissions:    round3(burning),
		ProcessingEmissions: round3(processing),
		DirectCO2Saved:      round3(direct),
		MethaneAvoided:      round3(methaneAvoided),
		TotalCO2Saved:       round3(direct + methaneAvoided),
	}
}

// EnergyGeneratedKWh estimates electricity-equivalent output for the
// biogas route: ~0.03 m³ biogas per kg waste at ~6 kWh per m³.
func EnergyGeneratedKWh(quantityKg float64) float64 {
	return math.Round(quantityKg*0.03*6*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
