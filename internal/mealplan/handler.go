package mealplan

import (
	"net/http"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   *Store
	catalog *catalog.Catalog
}

func NewHandler(store *Store, cat *catalog.Catalog) *Handler {
	return &Handler{store: store, catalog: cat}
}

type saveRequest struct {
	DishIDs []string `json:"dish_ids"`
}

// POST /meal-plans — save a planner selection and return the claim ID.
// Every dish must exist; a stale planner page gets a 404 instead of a
// plan that silently drops dishes.
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.DishIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_ids is required"})
		return
	}

	for _, id := range req.DishIDs {
		if _, err := h.catalog.Get(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found: " + id})
			return
		}
	}

	id := h.store.Save(req.DishIDs)
	c.JSON(http.StatusCreated, gin.H{"plan_id": id})
}
