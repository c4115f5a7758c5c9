package certificates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"farmcycle/waste-portal/waste-portal-backend/internal/engine"
)

const (
	// Assumed sale price per credit when stating the certificate value.
	certificateCreditRate = 2500.0

	issuingAuthority = "AgriWaste2Fuel Platform"
	creditStandard   = "Gold Standard for Global Goals"

	validityPeriod       = 365 * 24 * time.Hour
	verificationInterval = 180 * 24 * time.Hour
)

type template struct {
	Title       string
	Description string
}

// Certificate wording per method family. Thermal routes share the
// renewable energy template since both displace fossil generation.
var templates = map[engine.MethodFamily]template{
	engine.FamilyBiogas: {
		Title:       "Renewable Energy Generation Certificate",
		Description: "This certifies the conversion of agricultural waste into clean biogas energy, reducing greenhouse gas emissions and supporting sustainable farming practices.",
	},
	engine.FamilyThermal: {
		Title:       "Renewable Energy Generation Certificate",
		Description: "This certifies the thermal conversion of agricultural waste into usable energy, displacing fossil fuel consumption and avoiding open-field burning.",
	},
	engine.FamilyCompost: {
		Title:       "Organic Waste Composting Certificate",
		Description: "This certifies the transformation of organic waste into nutrient-rich compost, diverting waste from burning and enriching soil health.",
	},
}

// Service issues and verifies carbon credit certificates.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Issue creates a certificate for a completed analysis.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (*Certificate, error) {
	if req.CO2SavedTons < 0 || req.CarbonCredits < 0 {
		return nil, fmt.Errorf("certificate figures must be non-negative")
	}

	method := engine.ProcessingMethod(req.ProcessingMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("unknown processing method %q", req.ProcessingMethod)
	}

	now := time.Now()
	tpl := templates[method.Family()]

	cert := &Certificate{
		ID:               uuid.New(),
		CertificateID:    newCertificateID(now),
		VerificationCode: newVerificationCode(),
		UserName:         req.UserName,
		WasteType:        req.WasteType,
		ProcessingMethod: req.ProcessingMethod,
		Title:            tpl.Title,
		Description:      tpl.Description,
		CO2SavedTons:     req.CO2SavedTons,
		CarbonCredits:    req.CarbonCredits,
		EstimatedValue:   req.CarbonCredits * certificateCreditRate,
		Standard:         creditStandard,
		Authority:        issuingAuthority,
		IssuedAt:         now,
		ExpiresAt:        now.Add(validityPeriod),
		NextVerification: now.Add(verificationInterval),
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}

	s.logger.Info("certificate issued",
		zap.String("certificate_id", cert.CertificateID),
		zap.String("user", cert.UserName),
		zap.Float64("credits", cert.CarbonCredits))

	return cert, nil
}

// Verify looks up a certificate by its verification code.
func (s *Service) Verify(ctx context.Context, code string) (*Certificate, error) {
	return s.repo.GetByVerificationCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// Get returns a certificate by its public certificate ID.
func (s *Service) Get(ctx context.Context, certificateID string) (*Certificate, error) {
	return s.repo.GetByCertificateID(ctx, certificateID)
}

// ListByUser returns a user's certificates, newest first.
func (s *Service) ListByUser(ctx context.Context, userName string) ([]Certificate, error) {
	return s.repo.ListByUser(ctx, userName)
}

// Template returns the certificate wording for a processing method.
func Template(method engine.ProcessingMethod) (title, description string) {
	tpl := templates[method.Family()]
	return tpl.Title, tpl.Description
}

// EnvironmentalBenefit phrases the impact in everyday terms. One car is
// taken as roughly 2 tCO2e per year.
func EnvironmentalBenefit(co2SavedTons float64) string {
	cars := co2SavedTons * 0.5
	return fmt.Sprintf("Equivalent to removing %.1f cars from the road for 1 year", cars)
}

// newCertificateID builds an ID like AW2F-20250115-3F2A8B1C.
func newCertificateID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("AW2F-%s-%s", now.Format("20060102"), suffix)
}

// newVerificationCode builds a 12 character uppercase code.
func newVerificationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
}
