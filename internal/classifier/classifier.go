// Package classifier exposes waste classification as a pluggable
// capability. Two implementations exist: a rule-based text matcher backed
// by the engine's keyword tables, and a passthrough that normalizes the
// output of an external image detection model.
package classifier

import (
	"context"
	"errors"

	"farmcycle/waste-portal/waste-portal-backend/internal/engine"
)

// Input carries the raw material for a prediction. Exactly one of
// Description or Detection is expected to be populated.
type Input struct {
	Description string     `json:"description,omitempty"`
	QuantityKg  *float64   `json:"quantity_kg,omitempty"`
	Location    string     `json:"location,omitempty"`
	Detection   *Detection `json:"detection,omitempty"`
}

// Detection is the opaque output of an external object-detection model:
// a label, a confidence and the fraction of the frame covered by
// detections. The model itself is a black box to this package.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // percentage [0,100]
	Coverage   float64 `json:"coverage"`   // detection area fraction [0,1]
}

// Prediction is the normalized classification result.
type Prediction struct {
	WasteType   string   `json:"waste_type"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	QuantityKg  float64  `json:"quantity_kg"`
	Location    string   `json:"location"`
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"fallback"`
	Source      string   `json:"source"`
}

// Classifier predicts a waste type from an input. Implementations that
// call out to external models must honor ctx cancellation.
type Classifier interface {
	Predict(ctx context.Context, in Input) (*Prediction, error)
}

var ErrEmptyInput = errors.New("classifier input is empty")

// Text is the rule-based text classifier. It delegates to the engine's
// deterministic keyword identification.
type Text struct {
	engine *engine.Engine
}

// NewText builds the rule-based variant.
func NewText(e *engine.Engine) *Text {
	return &Text{engine: e}
}

func (t *Text) Predict(ctx context.Context, in Input) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ident, err := t.engine.IdentifyFromText(in.Description, in.QuantityKg, in.Location)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		WasteType:   ident.WasteType,
		DisplayName: ident.DisplayName,
		Category:    ident.Category,
		Confidence:  ident.Confidence,
		QuantityKg:  ident.QuantityKg,
		Location:    ident.Location,
		Suggestions: ident.Suggestions,
		Fallback:    ident.Fallback,
		Source:      "text",
	}, nil
}

// Quantity bounds for image-derived estimates. Tighter than the text
// bounds because a single frame cannot show a 50-ton pile.
const (
	imageQuantityMinKg = 100
	imageQuantityMaxKg = 5000
)

// Per-type base mass assumed for a full-frame detection, in kg.
var imageBaseQuantities = map[string]float64{
	"rice_straw":        1200,
	"wheat_straw":       1000,
	"corn_stalks":       1500,
	"cotton_waste":      800,
	"sugarcane_bagasse": 2000,
}

const imageDefaultBaseKg = 1000

// ImageModel normalizes external detector output into a Prediction. The
// detector runs out of process; this type only post-processes its result,
// so the quantity heuristic is deterministic (no sampled jitter).
type ImageModel struct {
	engine *engine.Engine
}

// NewImageModel builds the external-model passthrough variant.
func NewImageModel(e *engine.Engine) *ImageModel {
	return &ImageModel{engine: e}
}

func (m *ImageModel) Predict(ctx context.Context, in Input) (*Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if in.Detection == nil || in.Detection.Label == "" {
		return nil, ErrEmptyInput
	}

	key := engine.Canonicalize(in.Detection.Label)
	profile := m.engine.Attributes(key)

	qty := estimateQuantityFromDetection(key, in.Detection.Coverage)
	if in.QuantityKg != nil {
		if *in.QuantityKg < 0 {
			return nil, engine.ErrNegativeQuantity
		}
		qty = clampImageQuantity(*in.QuantityKg)
	}

	location := in.Location
	if location == "" {
		location = "India"
	}

	confidence := in.Detection.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return &Prediction{
		WasteType:   key,
		DisplayName: profile.DisplayName,
		Category:    profile.Category,
		Confidence:  confidence,
		QuantityKg:  qty,
		Location:    location,
		Suggestions: m.engine.SimilarTypes(key),
		Source:      "image",
	}, nil
}

// estimateQuantityFromDetection scales the per-type base mass by the
// detection coverage fraction, clamped to the image bounds. Coverage zero
// (no boxes reported) falls back to the base mass.
func estimateQuantityFromDetection(wasteType string, coverage float64) float64 {
	base, ok := imageBaseQuantities[wasteType]
	if !ok {
		base = imageDefaultBaseKg
	}
	if coverage <= 0 {
		return clampImageQuantity(base)
	}
	if coverage > 1 {
		coverage = 1
	}
	return clampImageQuantity(base * coverage)
}

func clampImageQuantity(v float64) float64 {
	if v < imageQuantityMinKg {
		return imageQuantityMinKg
	}
	if v > imageQuantityMaxKg {
		return imageQuantityMaxKg
	}
	return v
}
