package certificates

import (
	"time"

	"github.com/google/uuid"
)

// Certificate records an issued carbon credit certificate.
type Certificate struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CertificateID    string    `json:"certificate_id" gorm:"uniqueIndex"`
	VerificationCode string    `json:"verification_code" gorm:"uniqueIndex"`
	UserName         string    `json:"user_name" gorm:"index"`
	WasteType        string    `json:"waste_type"`
	ProcessingMethod string    `json:"processing_method"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CO2SavedTons     float64   `json:"co2_saved"`
	CarbonCredits    float64   `json:"carbon_credits"`
	EstimatedValue   float64   `json:"estimated_value"`
	Standard         string    `json:"standard"`
	Authority        string    `json:"authority"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	NextVerification time.Time `json:"next_verification"`
}

// IssueRequest is the payload for issuing a certificate.
type IssueRequest struct {
	UserName         string  `json:"user_name" binding:"required"`
	WasteType        string  `json:"waste_type" binding:"required"`
	ProcessingMethod string  `json:"processing_method" binding:"required"`
	CO2SavedTons     float64 `json:"co2_saved"`
	CarbonCredits    float64 `json:"carbon_credits"`
	AnalysisID       string  `json:"analysis_id"`
}
