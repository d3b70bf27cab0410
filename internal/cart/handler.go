package cart

import (
	"errors"
	"net/http"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/mealplan"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   *Store
	catalog *catalog.Catalog
	plans   *mealplan.Store
}

func NewHandler(store *Store, cat *catalog.Catalog, plans *mealplan.Store) *Handler {
	return &Handler{store: store, catalog: cat, plans: plans}
}

// GET /cart
func (h *Handler) Get(c *gin.Context) {
	items := h.store.Snapshot(c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addRequest struct {
	DishID string `json:"dish_id"`
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DishID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_id is required"})
		return
	}

	dish, err := h.catalog.Get(req.DishID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}

	userID := c.GetString("userID")
	var items []Item
	err = h.store.With(userID, func(cart *Cart) error {
		addErr := cart.Add(dish)
		items = cart.Items()
		return addErr
	})
	if errors.Is(err, ErrMaxQuantity) {
		// Distinct no-op: the cart did not change.
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "items": items})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:dishId
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := c.GetString("userID")
	var items []Item
	err := h.store.With(userID, func(cart *Cart) error {
		updateErr := cart.UpdateQuantity(c.Param("dishId"), req.Quantity)
		items = cart.Items()
		return updateErr
	})
	if errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrMaxQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DELETE /cart/items/:dishId
func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("userID")
	var items []Item
	_ = h.store.With(userID, func(cart *Cart) error {
		cart.Remove(c.Param("dishId"))
		items = cart.Items()
		return nil
	})

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("userID")
	_ = h.store.With(userID, func(cart *Cart) error {
		cart.Clear()
		return nil
	})

	c.JSON(http.StatusOK, gin.H{"items": []Item{}})
}

type loadPlanRequest struct {
	PlanID string `json:"plan_id"`
}

// POST /cart/plan — load a claimed meal plan into the cart. Items
// already at the cap are skipped rather than failing the load.
func (h *Handler) LoadPlan(c *gin.Context) {
	var req loadPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	dishIDs, err := h.plans.Claim(req.PlanID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	var items []Item
	_ = h.store.With(userID, func(cart *Cart) error {
		for _, id := range dishIDs {
			dish, err := h.catalog.Get(id)
			if err != nil {
				continue
			}
			_ = cart.Add(dish)
		}
		items = cart.Items()
		return nil
	})

	c.JSON(http.StatusOK, gin.H{"items": items})
}
