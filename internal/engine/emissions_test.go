package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAvoidedEmissions(t *testing.T) {
	e := newTestEngine(t)

	got := e.ComputeAvoidedEmissions("rice_straw", 1000, MethodBiogas)

	assert.InDelta(t, 1.2, got.BurningEmissions, 0.0001)
	assert.InDelta(t, 0.2, got.ProcessingEmissions, 0.0001)
	assert.InDelta(t, 1.0, got.DirectCO2Saved, 0.0001)
	// 1000 kg * 0.0025 kg CH4/kg * 25 GWP
	assert.InDelta(t, 62.5, got.MethaneAvoided, 0.0001)
	assert.InDelta(t, 63.5, got.TotalCO2Saved, 0.0001)
}

func TestComputeAvoidedEmissionsProcessingRoute(t *testing.T) {
	e := newTestEngine(t)

	biogas := e.ComputeAvoidedEmissions("cow_dung", 1000, MethodBiogas)
	compost := e.ComputeAvoidedEmissions("cow_dung", 1000, MethodComposting)

	// Composting emits more during processing than digestion does.
	assert.Less(t, biogas.ProcessingEmissions, compost.ProcessingEmissions)
	assert.Equal(t, biogas.BurningEmissions, compost.BurningEmissions)
}

func TestComputeAvoidedEmissionsUnknownTypeUsesDefault(t *testing.T) {
	e := newTestEngine(t)

	got := e.ComputeAvoidedEmissions("mystery_material", 1000, MethodComposting)

	assert.InDelta(t, 1.2, got.BurningEmissions, 0.0001)
	assert.InDelta(t, 0.3, got.ProcessingEmissions, 0.0001)
}

func TestEmissionLookupPartialMatch(t *testing.T) {
	table := defaultBurningFactors()

	// "rice straw residue" matches the "rice straw" entry by substring.
	assert.InDelta(t, 0.0012, table.lookup("rice_straw_residue"), 1e-9)
	assert.InDelta(t, 0.0015, table.lookup("cow_dung"), 1e-9)
}

func TestEmissionLookupIsDeterministic(t *testing.T) {
	table := defaultBurningFactors()

	first := table.lookup("straw")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, table.lookup("straw"))
	}
}

func TestEmissionTablesCarryDefault(t *testing.T) {
	tables := map[string]emissionTable{
		"burning": defaultBurningFactors(),
		"biogas":  defaultBiogasProcessFactors(),
		"compost": defaultCompostProcessFactors(),
		"methane": defaultMethaneFactors(),
	}
	for name, table := range tables {
		found := false
		for _, e := range table {
			assert.Greater(t, e.factor, 0.0, "%s/%s", name, e.name)
			if e.name == "default" {
				found = true
			}
		}
		assert.True(t, found, "table %s has no default entry", name)
	}
}

func TestEnergyGeneratedKWh(t *testing.T) {
	assert.InDelta(t, 180, EnergyGeneratedKWh(1000), 0.001)
	assert.InDelta(t, 9, EnergyGeneratedKWh(50), 0.001)
	assert.Zero(t, EnergyGeneratedKWh(0))
}
