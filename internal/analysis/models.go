package analysis

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Record is one saved analysis result for a user.
type Record struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           string         `json:"user_id" gorm:"index"`
	WasteType        string         `json:"waste_type"`
	QuantityKg       float64        `json:"quantity_kg"`
	Confidence       float64        `json:"confidence"`
	Source           string         `json:"source"` // text or image
	ProcessingMethod string         `json:"processing_method"`
	CO2SavedTons     float64        `json:"co2_saved"`
	CarbonCredits    float64        `json:"carbon_credits"`
	Location         string         `json:"location"`
	Details          datatypes.JSON `json:"details,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Stats are the running aggregates for a user.
type Stats struct {
	TotalAnalyses       int     `json:"total_analyses"`
	TotalCO2Saved       float64 `json:"total_co2_saved"`
	TotalCarbonCredits  float64 `json:"total_carbon_credits"`
	TotalWasteProcessed float64 `json:"total_waste_processed"`
	EstimatedEarnings   float64 `json:"estimated_earnings"`
}

// SaveRequest is the payload for recording an analysis result.
type SaveRequest struct {
	UserID           string         `json:"user_id" binding:"required"`
	WasteType        string         `json:"waste_type" binding:"required"`
	QuantityKg       float64        `json:"quantity_kg"`
	Confidence       float64        `json:"confidence"`
	Source           string         `json:"source"`
	ProcessingMethod string         `json:"processing_method"`
	CO2SavedTons     float64        `json:"co2_saved"`
	CarbonCredits    float64        `json:"carbon_credits"`
	Location         string         `json:"location"`
	Details          datatypes.JSON `json:"details,omitempty"`
}
