package recommend

import (
	"net/http"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

type recommendRequest struct {
	Profile Profile `json:"profile"`
	Max     int     `json:"max"`
}

// POST /recommendations — the client owns the profile, the server
// owns the menu and the scoring.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	recs := MealRecommendations(req.Profile, h.catalog.All(), req.Max)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

type tipsRequest struct {
	Profile Profile        `json:"profile"`
	History []HistoryEntry `json:"history"`
}

// POST /recommendations/tips
func (h *Handler) Tips(c *gin.Context) {
	var req tipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tips := CarbonTips(req.Profile, req.History)
	if tips == nil {
		tips = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}
