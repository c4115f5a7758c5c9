package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyFromText(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("I have 1000 kg of cattle manure from my dairy farm", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "cow_dung", ident.WasteType)
	assert.Equal(t, "Cow Dung", ident.DisplayName)
	assert.Equal(t, "Animal Waste", ident.Category)
	assert.InDelta(t, 1000, ident.QuantityKg, 0.001)
	assert.Equal(t, "India", ident.Location)
	assert.False(t, ident.Fallback)
	assert.InDelta(t, 80, ident.Confidence, 0.001)
}

func TestNormalizeTextKeepsCombiningMarks(t *testing.T) {
	// Devanagari vowel signs, viramas and anusvaras are combining marks;
	// normalization must not strip them or Hindi keywords stop matching.
	assert.Equal(t, "गोबर", normalizeText("गोबर"))
	assert.Equal(t, "क्विंटल", normalizeText(" क्विंटल! "))
	assert.Equal(t, "rice straw", normalizeText("Rice, straw."))
}

func TestIdentifyFromTextHindiKeywords(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("मेरे पास 5 क्विंटल गोबर है", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "cow_dung", ident.WasteType)
	assert.InDelta(t, 500, ident.QuantityKg, 0.001)
}

func TestIdentifyFromTextUnitConversions(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		text string
		want float64
	}{
		{"2 tons of rice straw", 2000},
		{"3 quintals of wheat straw", 300},
		{"10 sacks of cow dung", 500},
		{"4 bundles of corn stalks", 100},
		{"2 acres of sugarcane", 4000},
		{"500 grams of peels", 10}, // clamped up to the floor
	}
	for _, tt := range tests {
		ident, err := e.IdentifyFromText(tt.text, nil, "")
		require.NoError(t, err)
		assert.InDelta(t, tt.want, ident.QuantityKg, 0.001, tt.text)
	}
}

func TestIdentifyFromTextSizeTerms(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("a truck load of wheat straw", nil, "")
	require.NoError(t, err)
	assert.InDelta(t, 5000, ident.QuantityKg, 0.001)

	ident, err = e.IdentifyFromText("small pile of vegetable waste", nil, "")
	require.NoError(t, err)
	assert.InDelta(t, 100, ident.QuantityKg, 0.001)
}

func TestIdentifyFromTextLocation(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("rice straw from punjab", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Punjab", ident.Location)

	// Explicit location wins over extraction.
	ident, err = e.IdentifyFromText("rice straw from punjab", nil, "Kerala")
	require.NoError(t, err)
	assert.Equal(t, "Kerala", ident.Location)
}

func TestIdentifyFromTextExplicitQuantity(t *testing.T) {
	e := newTestEngine(t)

	qty := 250.0
	ident, err := e.IdentifyFromText("2 tons of rice straw", &qty, "")
	require.NoError(t, err)
	assert.InDelta(t, 250, ident.QuantityKg, 0.001)

	// Explicit quantities are clamped to the text bounds.
	big := 100000.0
	ident, err = e.IdentifyFromText("rice straw", &big, "")
	require.NoError(t, err)
	assert.InDelta(t, 50000, ident.QuantityKg, 0.001)
}

func TestIdentifyFromTextNegativeQuantity(t *testing.T) {
	e := newTestEngine(t)

	qty := -1.0
	_, err := e.IdentifyFromText("rice straw", &qty, "")
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestIdentifyFromTextEmptyInputFallback(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("", nil, "")
	require.NoError(t, err)

	assert.True(t, ident.Fallback)
	assert.Equal(t, "agricultural_waste", ident.WasteType)
	assert.InDelta(t, 1000, ident.QuantityKg, 0.001)
	assert.Equal(t, "India", ident.Location)
	assert.InDelta(t, 60, ident.Confidence, 0.001)
}

func TestIdentifyFromTextNoMatchFallback(t *testing.T) {
	e := newTestEngine(t)

	ident, err := e.IdentifyFromText("xyzzy plugh", nil, "")
	require.NoError(t, err)

	assert.True(t, ident.Fallback)
	assert.Equal(t, "agricultural_waste", ident.WasteType)
}

func TestIdentifyFromTextIdempotent(t *testing.T) {
	e := newTestEngine(t)
	const text = "large heap of sugarcane bagasse in maharashtra"

	first, err := e.IdentifyFromText(text, nil, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.IdentifyFromText(text, nil, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyKeywordsWholeWordScoresHigher(t *testing.T) {
	e := newTestEngine(t)

	// "cotton" appears as a whole word; confidence reflects the 2-point hit.
	_, conf, matched := e.classifyKeywords("cotton field leftovers")
	assert.True(t, matched)
	assert.GreaterOrEqual(t, conf, 80.0)
}

func TestConfidenceCap(t *testing.T) {
	e := newTestEngine(t)

	// Stacking many keywords must not push confidence past 95.
	ident, err := e.IdentifyFromText("rice paddy straw chawal dhan rice stubble paddy straw rice residue rice waste", nil, "")
	require.NoError(t, err)
	assert.LessOrEqual(t, ident.Confidence, 95.0)
}

func TestSuggestions(t *testing.T) {
	e := newTestEngine(t)

	got := e.Suggestions("straw", 5)
	assert.Contains(t, got, "Rice Straw")
	assert.Contains(t, got, "Wheat Straw")
	assert.LessOrEqual(t, len(got), 5)
}

func TestSimilarTypes(t *testing.T) {
	e := newTestEngine(t)

	assert.Contains(t, e.SimilarTypes("cow_dung"), "Buffalo Dung")
	assert.NotEmpty(t, e.SimilarTypes("totally_unknown"))
}
