package engine

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identification is the result of classifying a waste description.
type Identification struct {
	WasteType   string   `json:"waste_type"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	QuantityKg  float64  `json:"quantity_kg"`
	Location    string   `json:"location"`
	Suggestions []string `json:"suggestions"`

	// Fallback is set when the input yielded no signal at all and the
	// default type/quantity/location triple was returned instead.
	Fallback bool `json:"fallback"`
}

// Bounds for text-derived quantity estimates.
const (
	textQuantityMinKg = 10
	textQuantityMaxKg = 50000
	defaultQuantityKg = 1000
	defaultWasteType  = "agricultural_waste"
)

// Combining marks (\p{M}) must survive normalization: Devanagari vowel
// signs and viramas are marks, and stripping them mangles every Hindi
// keyword ("गोबर" would come out as "ग बर").
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s]`)

// normalizeText lowercases, strips punctuation and collapses whitespace.
func normalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// IdentifyFromText classifies a free-text waste description into a waste
// type, quantity and location. Explicit quantity and location override the
// extraction heuristics. The function is deterministic and never fails on
// empty or unmatchable input; it returns the default triple with the
// Fallback flag set instead. A negative explicit quantity is the one
// rejected input.
func (e *Engine) IdentifyFromText(description string, explicitQty *float64, explicitLocation string) (*Identification, error) {
	if explicitQty != nil && *explicitQty < 0 {
		return nil, ErrNegativeQuantity
	}

	text := normalizeText(description)
	if text == "" {
		qty := float64(defaultQuantityKg)
		if explicitQty != nil {
			qty = clamp(*explicitQty, textQuantityMinKg, textQuantityMaxKg)
		}
		loc := explicitLocation
		if loc == "" {
			loc = e.defaultLocation
		}
		return e.identification(defaultWasteType, 60, qty, loc, true), nil
	}

	wasteType, confidence, matched := e.classifyKeywords(text)

	qty := float64(defaultQuantityKg)
	if explicitQty != nil {
		qty = clamp(*explicitQty, textQuantityMinKg, textQuantityMaxKg)
	} else {
		qty = e.extractQuantity(text)
	}

	loc := explicitLocation
	if loc == "" {
		loc = e.extractLocation(text)
	}

	return e.identification(wasteType, confidence, qty, loc, !matched), nil
}

func (e *Engine) identification(wasteType string, confidence, qty float64, location string, fallback bool) *Identification {
	profile := e.Attributes(wasteType)
	return &Identification{
		WasteType:   wasteType,
		DisplayName: displayName(wasteType),
		Category:    profile.Category,
		Confidence:  confidence,
		QuantityKg:  qty,
		Location:    location,
		Suggestions: e.SimilarTypes(wasteType),
		Fallback:    fallback,
	}
}

// classifyKeywords scores every canonical type by keyword hits. A keyword
// appearing as a whole word scores 2, a substring hit scores 1. Ties
// resolve to the earliest table entry, which is why the table is a slice.
func (e *Engine) classifyKeywords(text string) (wasteType string, confidence float64, matched bool) {
	padded := " " + text + " "

	bestType := defaultWasteType
	bestScore := 0
	for _, entry := range e.keywords {
		score := 0
		for _, kw := range entry.keywords {
			kw = strings.ToLower(kw)
			if !strings.Contains(text, kw) {
				continue
			}
			if strings.Contains(padded, " "+kw+" ") {
				score += 2
			} else {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestType = entry.wasteType
		}
	}

	if bestScore == 0 {
		return defaultWasteType, 60, false
	}
	confidence = 60 + float64(bestScore)*10
	if confidence > 95 {
		confidence = 95
	}
	return bestType, confidence, true
}

// extractQuantity pulls a quantity in kg out of the text. Numeric unit
// expressions take priority over qualitative size words; the final value
// is clamped to [10, 50000] kg.
func (e *Engine) extractQuantity(text string) float64 {
	for _, p := range e.unitPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return clamp(value*p.toKg, textQuantityMinKg, textQuantityMaxKg)
	}

	for _, term := range e.sizeTerms {
		if strings.Contains(text, term.term) {
			return term.kg
		}
	}

	return defaultQuantityKg
}

// extractLocation scans for known region names. First match wins; the
// configured default region is returned when nothing matches.
func (e *Engine) extractLocation(text string) string {
	for _, loc := range e.locations {
		if strings.Contains(text, loc) {
			return titleCaser.String(loc)
		}
	}
	return e.defaultLocation
}

var titleCaser = cases.Title(language.English)

// SimilarTypes suggests waste types from the same category.
func (e *Engine) SimilarTypes(wasteType string) []string {
	category := e.Attributes(wasteType).Category
	if types, ok := e.categoryTypes[category]; ok {
		return types
	}
	return []string{"Rice Straw", "Wheat Straw", "Corn Stalks"}
}

// Suggestions returns up to limit display names matching a partial query.
func (e *Engine) Suggestions(query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, entry := range e.keywords {
		name := displayName(entry.wasteType)
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}
