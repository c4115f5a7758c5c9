package engine

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(newTestEngine(t), zap.NewNop())
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictTextEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/predict-text", gin.H{
		"description": "2 tons of rice straw from punjab",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rice Straw", resp["waste_type"])
	assert.Equal(t, "rice_straw", resp["canonical_type"])
	assert.InDelta(t, 2000, resp["quantity"].(float64), 0.001)
	assert.Equal(t, "Punjab", resp["location"])
}

func TestPredictTextEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/predict-text", gin.H{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/predict-text", gin.H{
		"description": "rice straw",
		"quantity_kg": -10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommend", gin.H{
		"waste_type":  "cow_dung",
		"quantity_kg": 1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rec Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, MethodBiogas, rec.Method)
	assert.Len(t, rec.ProcessingSteps, 6)
}

func TestRecommendEndpointAcceptsZeroQuantity(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommend", gin.H{
		"waste_type":  "cow_dung",
		"quantity_kg": 0,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// The field itself is still required.
	w = doJSON(t, router, http.MethodPost, "/api/v1/recommend", gin.H{
		"waste_type": "cow_dung",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEstimateImpactEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/estimate-impact", gin.H{
		"waste_type":        "rice_straw",
		"processing_method": "Anaerobic Digestion",
		"quantity_kg":       1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var impact ImpactResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &impact))
	assert.True(t, impact.Applicable)
	assert.InDelta(t, 600, impact.GHGSavings.Min, 0.001)
}

func TestEstimateImpactEndpointNotApplicableIs200(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/estimate-impact", gin.H{
		"waste_type":        "cow_dung",
		"processing_method": "Direct Combustion",
		"quantity_kg":       1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var impact ImpactResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &impact))
	assert.False(t, impact.Applicable)
	assert.Equal(t, "N/A", impact.GHGSavingsText)
}

func TestEstimateImpactEndpointAcceptsZeroQuantity(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/estimate-impact", gin.H{
		"waste_type":        "cow_dung",
		"processing_method": "Biogas",
		"quantity_kg":       0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEstimateImpactEndpointUnknownMethod(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/estimate-impact", gin.H{
		"waste_type":        "rice_straw",
		"processing_method": "Incineration",
		"quantity_kg":       1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGHGSavingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/ghg-savings", gin.H{
		"waste_type":        "rice_straw",
		"quantity_kg":       1000,
		"processing_method": "Biogas",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 63.5, resp["co2_saved"].(float64), 0.001)
	assert.InDelta(t, 180, resp["energy_generated"].(float64), 0.001)
}

func TestCarbonCreditEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/carbon-credit", gin.H{
		"co2_saved":          2.0,
		"waste_type":         "rice_straw",
		"processing_method":  "Anaerobic Digestion",
		"verification_level": "basic",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result MarketResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 2.4, result.CreditsEarned, 0.001)
	assert.True(t, result.Eligible)
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/analyze", gin.H{
		"description": "I have 1000 kg of cattle manure from my dairy farm",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var outcome AnalysisOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	require.NotNil(t, outcome.Identification)
	assert.Equal(t, "cow_dung", outcome.Identification.WasteType)
	require.NotNil(t, outcome.Market)
}

func TestProcessingMethodsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/processing-methods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Methods map[string]json.RawMessage `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Methods, 8)
}

func TestWasteCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/waste-categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories map[string][]string `json:"categories"`
		TotalTypes int                 `json:"total_types"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Categories, "Animal Waste")
	assert.Greater(t, resp.TotalTypes, 0)
}

func TestSearchSuggestionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/search-suggestions/straw", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Suggestions, "Rice Straw")
}

func TestMarketRatesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/market-rates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "voluntary")
}
