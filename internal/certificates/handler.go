package certificates

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes certificate issuing, download and verification endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/generate-certificate", h.Generate)
	r.GET("/certificate/:certificate_id/download", h.Download)
	r.GET("/verify-certificate/:code", h.Verify)
	r.GET("/certificates/:user_name", h.ListByUser)
}

func (h *Handler) Generate(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cert, err := h.service.Issue(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to issue certificate", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"certificate":           cert,
		"environmental_benefit": EnvironmentalBenefit(cert.CO2SavedTons),
	})
}

func (h *Handler) Download(c *gin.Context) {
	cert, err := h.service.Get(c.Request.Context(), c.Param("certificate_id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	data, err := RenderPDF(cert, DefaultPDFOptions())
	if err != nil {
		h.logger.Error("failed to render certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	filename := fmt.Sprintf("certificate_%s.pdf", cert.CertificateID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) Verify(c *gin.Context) {
	cert, err := h.service.Verify(c.Request.Context(), c.Param("code"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	if err != nil {
		h.logger.Error("failed to verify certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       true,
		"certificate": cert,
	})
}

func (h *Handler) ListByUser(c *gin.Context) {
	certs, err := h.service.ListByUser(c.Request.Context(), c.Param("user_name"))
	if err != nil {
		h.logger.Error("failed to list certificates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs, "count": len(certs)})
}
