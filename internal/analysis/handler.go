package analysis

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the analysis history endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/save-analysis", h.SaveAnalysis)
	r.GET("/user-stats/:user_id", h.UserStats)
	r.GET("/recent-activity/:user_id", h.RecentActivity)
	r.GET("/dashboard-summary/:user_id", h.DashboardSummary)
}

func (h *Handler) SaveAnalysis(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to save analysis", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": record.ID, "created_at": record.CreatedAt})
}

func (h *Handler) UserStats(c *gin.Context) {
	stats, err := h.service.UserStats(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.logger.Error("failed to load user stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	records, err := h.service.RecentActivity(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		h.logger.Error("failed to load recent activity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": records, "count": len(records)})
}

func (h *Handler) DashboardSummary(c *gin.Context) {
	userID := c.Param("user_id")
	ctx := c.Request.Context()

	stats, err := h.service.UserStats(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	recent, err := h.service.RecentActivity(ctx, userID, 5)
	if err != nil {
		h.logger.Error("failed to load dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           stats,
		"recent_activity": recent,
	})
}
