package order

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type placeRequest struct {
	PickupTime string `json:"pickup_time"`
}

// POST /orders
func (h *Handler) Place(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := c.GetString("userID")

	placed, err := h.service.Place(c.Request.Context(), userID, req.PickupTime)
	switch {
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrMissingPickupTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("order: place failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, placed)
}

// GET /orders/quote — price the current cart without placing it.
func (h *Handler) Quote(c *gin.Context) {
	userID := c.GetString("userID")

	quote, err := h.service.QuoteCart(userID)
	if errors.Is(err, ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("order: quote failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GET /orders
func (h *Handler) History(c *gin.Context) {
	userID := c.GetString("userID")

	orders, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		log.Printf("order: history failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
