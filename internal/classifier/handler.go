package classifier

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmcycle/waste-portal/waste-portal-backend/internal/engine"
)

// ImageHandler exposes image-based prediction. The detector itself runs
// out of process; clients post its raw output here for normalization.
type ImageHandler struct {
	model  *ImageModel
	logger *zap.Logger
}

func NewImageHandler(model *ImageModel, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{model: model, logger: logger}
}

func (h *ImageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict-image", h.PredictImage)
}

type predictImageRequest struct {
	Detection  Detection `json:"detection" binding:"required"`
	QuantityKg *float64  `json:"quantity_kg"`
	Location   string    `json:"location"`
}

func (h *ImageHandler) PredictImage(c *gin.Context) {
	var req predictImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.model.Predict(c.Request.Context(), Input{
		Detection:  &req.Detection,
		QuantityKg: req.QuantityKg,
		Location:   req.Location,
	})
	if errors.Is(err, ErrEmptyInput) || errors.Is(err, engine.ErrNegativeQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("image prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, prediction)
}
