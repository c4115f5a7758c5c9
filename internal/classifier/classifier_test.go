package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmcycle/waste-portal/waste-portal-backend/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(zap.NewNop(), engine.Options{})
	require.NoError(t, err)
	return e
}

func TestTextPredict(t *testing.T) {
	c := NewText(newEngine(t))

	pred, err := c.Predict(context.Background(), Input{
		Description: "2 tons of rice straw from punjab",
	})
	require.NoError(t, err)

	assert.Equal(t, "rice_straw", pred.WasteType)
	assert.InDelta(t, 2000, pred.QuantityKg, 0.001)
	assert.Equal(t, "Punjab", pred.Location)
	assert.Equal(t, "text", pred.Source)
	assert.False(t, pred.Fallback)
}

func TestTextPredictFallback(t *testing.T) {
	c := NewText(newEngine(t))

	pred, err := c.Predict(context.Background(), Input{Description: ""})
	require.NoError(t, err)

	assert.True(t, pred.Fallback)
	assert.Equal(t, "agricultural_waste", pred.WasteType)
}

func TestTextPredictHonorsContext(t *testing.T) {
	c := NewText(newEngine(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Predict(ctx, Input{Description: "rice straw"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImageModelPredict(t *testing.T) {
	m := NewImageModel(newEngine(t))

	pred, err := m.Predict(context.Background(), Input{
		Detection: &Detection{Label: "rice_straw", Confidence: 87.5, Coverage: 0.5},
	})
	require.NoError(t, err)

	assert.Equal(t, "rice_straw", pred.WasteType)
	assert.InDelta(t, 87.5, pred.Confidence, 0.001)
	// 1200 kg base scaled by 0.5 coverage
	assert.InDelta(t, 600, pred.QuantityKg, 0.001)
	assert.Equal(t, "image", pred.Source)
	assert.Equal(t, "India", pred.Location)
}

func TestImageModelQuantityClamping(t *testing.T) {
	m := NewImageModel(newEngine(t))

	// Tiny coverage clamps up to the image floor.
	pred, err := m.Predict(context.Background(), Input{
		Detection: &Detection{Label: "cotton_waste", Confidence: 90, Coverage: 0.01},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, pred.QuantityKg, 0.001)

	// Explicit quantities are clamped to the image bounds too.
	qty := 9000.0
	pred, err = m.Predict(context.Background(), Input{
		Detection:  &Detection{Label: "cotton_waste", Confidence: 90, Coverage: 0.5},
		QuantityKg: &qty,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5000, pred.QuantityKg, 0.001)
}

func TestImageModelZeroCoverageUsesBase(t *testing.T) {
	m := NewImageModel(newEngine(t))

	pred, err := m.Predict(context.Background(), Input{
		Detection: &Detection{Label: "sugarcane_bagasse", Confidence: 75, Coverage: 0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 2000, pred.QuantityKg, 0.001)
}

func TestImageModelConfidenceBounds(t *testing.T) {
	m := NewImageModel(newEngine(t))

	pred, err := m.Predict(context.Background(), Input{
		Detection: &Detection{Label: "rice_straw", Confidence: 140, Coverage: 0.5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, pred.Confidence, 0.001)
}

func TestImageModelIsDeterministic(t *testing.T) {
	m := NewImageModel(newEngine(t))
	in := Input{Detection: &Detection{Label: "wheat_straw", Confidence: 80, Coverage: 0.42}}

	first, err := m.Predict(context.Background(), in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := m.Predict(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestImageModelErrors(t *testing.T) {
	m := NewImageModel(newEngine(t))

	_, err := m.Predict(context.Background(), Input{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	qty := -10.0
	_, err = m.Predict(context.Background(), Input{
		Detection:  &Detection{Label: "rice_straw", Confidence: 80, Coverage: 0.5},
		QuantityKg: &qty,
	})
	assert.ErrorIs(t, err, engine.ErrNegativeQuantity)
}
