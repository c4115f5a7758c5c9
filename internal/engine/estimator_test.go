package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateImpact(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.EstimateImpact("rice_straw", MethodAnaerobicDigestion, 1000, TierMid)
	require.NoError(t, err)

	assert.True(t, result.Applicable)
	assert.InDelta(t, 600, result.GHGSavings.Min, 0.001)
	assert.InDelta(t, 700, result.GHGSavings.Max, 0.001)
	assert.InDelta(t, 510, result.Credits.Min, 0.001)
	assert.InDelta(t, 595, result.Credits.Max, 0.001)
	assert.InDelta(t, 0.85, result.RateUsed, 0.001)
	assert.InDelta(t, 0.65, result.CO2SavedTons, 0.0001)
	assert.Equal(t, "m³ of biogas", result.OutputUnit)
}

func TestEstimateImpactTierRates(t *testing.T) {
	e := newTestEngine(t)

	low, err := e.EstimateImpact("cow_dung", MethodBiogas, 100, TierLow)
	require.NoError(t, err)
	high, err := e.EstimateImpact("cow_dung", MethodBiogas, 100, TierHigh)
	require.NoError(t, err)

	assert.InDelta(t, 0.50, low.RateUsed, 0.001)
	assert.InDelta(t, 1.00, high.RateUsed, 0.001)
	assert.Less(t, low.Credits.Max, high.Credits.Max)

	// GHG savings do not depend on the price tier.
	assert.Equal(t, low.GHGSavings, high.GHGSavings)
}

func TestEstimateImpactUnknownTierFallsBack(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.EstimateImpact("cow_dung", MethodBiogas, 100, "platinum")
	require.NoError(t, err)
	assert.Equal(t, TierMid, result.Tier)
	assert.InDelta(t, 0.85, result.RateUsed, 0.001)
}

func TestEstimateImpactGenericFallback(t *testing.T) {
	e := newTestEngine(t)

	// banana_leaves has no dedicated Biogas factor; the generic
	// crop_residues factor applies instead.
	result, err := e.EstimateImpact("banana_leaves", MethodBiogas, 1000, TierMid)
	require.NoError(t, err)

	assert.True(t, result.Applicable)
	assert.InDelta(t, 340, result.GHGSavings.Min, 0.001)
	assert.InDelta(t, 420, result.GHGSavings.Max, 0.001)
}

func TestEstimateImpactNotApplicable(t *testing.T) {
	e := newTestEngine(t)

	// Neither cow_dung nor the generic key has a Direct Combustion factor.
	result, err := e.EstimateImpact("cow_dung", MethodDirectCombustion, 1000, TierMid)
	require.NoError(t, err)

	assert.False(t, result.Applicable)
	assert.Equal(t, "N/A", result.GHGSavingsText)
	assert.Equal(t, "N/A", result.CreditsText)
	assert.Zero(t, result.CO2SavedTons)

	// The physical yield depends only on the method, so it is still
	// estimated for pairs with no savings data.
	assert.InDelta(t, 800, result.Output.Min, 0.001)
	assert.InDelta(t, 900, result.Output.Max, 0.001)
	assert.Equal(t, "kWh of energy", result.OutputUnit)
	assert.NotEqual(t, "N/A", result.OutputText)
}

func TestEstimateImpactZeroQuantity(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.EstimateImpact("cow_dung", MethodBiogas, 0, TierMid)
	require.NoError(t, err)
	assert.True(t, result.Applicable)
	assert.Zero(t, result.GHGSavings.Min)
	assert.Zero(t, result.GHGSavings.Max)
}

func TestEstimateImpactErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.EstimateImpact("cow_dung", MethodBiogas, -1, TierMid)
	assert.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = e.EstimateImpact("cow_dung", "incineration", 100, TierMid)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestEstimateImpactMonotonicInQuantity(t *testing.T) {
	e := newTestEngine(t)

	small, err := e.EstimateImpact("rice_straw", MethodGasification, 100, TierMid)
	require.NoError(t, err)
	large, err := e.EstimateImpact("rice_straw", MethodGasification, 1000, TierMid)
	require.NoError(t, err)

	assert.Less(t, small.GHGSavings.Max, large.GHGSavings.Min)
}

func TestSavingsFactorTableSanity(t *testing.T) {
	for key, r := range defaultSavingsFactors() {
		assert.True(t, key.method.Valid(), "unknown method in table: %q", key.method)
		assert.GreaterOrEqual(t, r.Min, 0.0, "%s/%s", key.wasteType, key.method)
		assert.LessOrEqual(t, r.Min, r.Max, "%s/%s", key.wasteType, key.method)
	}
}

func TestOutputFactorTableSanity(t *testing.T) {
	for method, out := range defaultOutputFactors() {
		assert.True(t, method.Valid())
		assert.NotEmpty(t, out.unit)
		assert.LessOrEqual(t, out.yield.Min, out.yield.Max)
	}
}
