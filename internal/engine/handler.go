package engine

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the engine over HTTP. It only threads request fields
// through the pipeline stages and serializes the results.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates an engine HTTP handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes mounts the engine endpoints on the router group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict-text", h.PredictText)
	r.POST("/recommend", h.Recommend)
	r.POST("/estimate-impact", h.EstimateImpact)
	r.POST("/ghg-savings", h.GHGSavings)
	r.POST("/carbon-credit", h.CarbonCredit)
	r.POST("/analyze", h.Analyze)

	r.GET("/processing-methods", h.ProcessingMethods)
	r.GET("/waste-categories", h.WasteCategories)
	r.GET("/search-suggestions/:query", h.SearchSuggestions)
	r.GET("/market-rates", h.MarketRates)
	r.GET("/emission-factors", h.EmissionFactors)
}

// TextPredictionRequest is the payload for text identification.
type TextPredictionRequest struct {
	Description string   `json:"description" binding:"required"`
	QuantityKg  *float64 `json:"quantity_kg"`
	Location    string   `json:"location"`
}

func (h *Handler) PredictText(c *gin.Context) {
	var req TextPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ident, err := h.engine.IdentifyFromText(req.Description, req.QuantityKg, req.Location)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"waste_type":       ident.DisplayName,
		"canonical_type":   ident.WasteType,
		"confidence":       ident.Confidence,
		"quantity":         ident.QuantityKg,
		"location":         ident.Location,
		"matched_category": ident.Category,
		"suggestions":      ident.Suggestions,
		"fallback":         ident.Fallback,
		"timestamp":        time.Now(),
	})
}

// RecommendRequest is the payload for method recommendation. Quantities
// are pointers so that an explicit zero survives the required check; the
// engine accepts any non-negative quantity.
type RecommendRequest struct {
	WasteType   string        `json:"waste_type" binding:"required"`
	QuantityKg  *float64      `json:"quantity_kg" binding:"required"`
	Moisture    MoistureClass `json:"moisture_content"`
	ClimateZone string        `json:"climate_zone"`
}

func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.engine.Recommend(req.WasteType, *req.QuantityKg, req.Moisture, req.ClimateZone)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ImpactRequest is the payload for GHG and credit estimation.
type ImpactRequest struct {
	WasteType  string           `json:"waste_type" binding:"required"`
	Method     ProcessingMethod `json:"processing_method" binding:"required"`
	QuantityKg *float64         `json:"quantity_kg" binding:"required"`
	Tier       PriceTier        `json:"price_tier"`
}

func (h *Handler) EstimateImpact(c *gin.Context) {
	var req ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	impact, err := h.engine.EstimateImpact(req.WasteType, req.Method, *req.QuantityKg, req.Tier)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	// Not-applicable pairs still return 200 with the sentinel fields;
	// this is a discovery API, not a strict validation one.
	c.JSON(http.StatusOK, impact)
}

// GHGSavingsRequest is the payload for the avoided-emissions breakdown.
type GHGSavingsRequest struct {
	WasteType  string           `json:"waste_type" binding:"required"`
	QuantityKg *float64         `json:"quantity_kg" binding:"required"`
	Method     ProcessingMethod `json:"processing_method" binding:"required"`
}

func (h *Handler) GHGSavings(c *gin.Context) {
	var req GHGSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if *req.QuantityKg < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrNegativeQuantity.Error()})
		return
	}
	if !req.Method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrUnknownMethod.Error()})
		return
	}

	emissions := h.engine.ComputeAvoidedEmissions(req.WasteType, *req.QuantityKg, req.Method)

	resp := gin.H{
		"co2_saved":           emissions.TotalCO2Saved,
		"co2_saved_unit":      "tons CO₂e",
		"methane_reduction":   emissions.MethaneAvoided,
		"baseline_emissions":  emissions.BurningEmissions,
		"processing_emissions": emissions.ProcessingEmissions,
		"net_reduction":       emissions.TotalCO2Saved,
		"timestamp":           time.Now(),
	}
	if req.Method.Family() == FamilyBiogas {
		resp["energy_generated"] = EnergyGeneratedKWh(*req.QuantityKg)
	}
	c.JSON(http.StatusOK, resp)
}

// CarbonCreditRequest is the payload for market valuation.
type CarbonCreditRequest struct {
	CO2SavedTons      *float64          `json:"co2_saved" binding:"required"`
	WasteType         string            `json:"waste_type" binding:"required"`
	Method            ProcessingMethod  `json:"processing_method" binding:"required"`
	VerificationLevel VerificationLevel `json:"verification_level"`
}

func (h *Handler) CarbonCredit(c *gin.Context) {
	var req CarbonCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.MarketValue(*req.CO2SavedTons, req.WasteType, req.Method, req.VerificationLevel)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeRequest runs the full pipeline from a text description.
type AnalyzeRequest struct {
	Description       string            `json:"description" binding:"required"`
	QuantityKg        *float64          `json:"quantity_kg"`
	Location          string            `json:"location"`
	Moisture          MoistureClass     `json:"moisture_content"`
	Tier              PriceTier         `json:"price_tier"`
	VerificationLevel VerificationLevel `json:"verification_level"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.engine.Analyze(req.Description, req.QuantityKg, req.Location, req.Moisture, req.Tier, req.VerificationLevel)
	if err != nil {
		h.rejectOrFail(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *Handler) ProcessingMethods(c *gin.Context) {
	methods := make(map[string]gin.H, len(AllMethods()))
	for _, m := range AllMethods() {
		out := gin.H{
			"family": m.Family(),
			"steps":  stepsForFamily(m.Family()),
			"tools":  toolsForFamily(m.Family()),
		}
		methods[string(m)] = out
	}
	c.JSON(http.StatusOK, gin.H{
		"methods": methods,
		"selection_criteria": []string{
			"Moisture content of waste",
			"Carbon to nitrogen ratio",
			"Available infrastructure",
			"Desired output type",
			"Processing timeline",
		},
	})
}

func (h *Handler) WasteCategories(c *gin.Context) {
	categories := h.engine.SupportedCategories()
	total := 0
	for _, types := range categories {
		total += len(types)
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":  categories,
		"total_types": total,
	})
}

func (h *Handler) SearchSuggestions(c *gin.Context) {
	query := c.Param("query")
	suggestions := h.engine.Suggestions(query, 10)
	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

func (h *Handler) MarketRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"market_rates": h.engine.marketRates,
		"currency":     h.engine.currency,
		"last_updated": time.Now(),
	})
}

func (h *Handler) EmissionFactors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"conversion_factors": gin.H{
			"ch4_to_co2e":          methaneGWP,
			"energy_per_m3_biogas": 6,
			"biogas_yield_per_kg":  0.03,
		},
		"data_sources": []string{
			"IPCC Guidelines for National Greenhouse Gas Inventories",
			"FAO Guidelines for measuring GHG emissions from agriculture",
		},
	})
}

// rejectOrFail maps engine errors onto HTTP statuses: invalid inputs are
// 400s, anything else is a 500.
func (h *Handler) rejectOrFail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNegativeQuantity), errors.Is(err, ErrUnknownMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("engine request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
