package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /dashboard/leaderboard
func (h *Handler) Leaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary":     h.service.Summarize(),
		"leaderboard": h.service.Leaderboard(),
	})
}

// GET /dashboard/farms
func (h *Handler) Farms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": h.service.FarmNetwork(),
		"farms": h.service.Farms(),
	})
}
