package waste

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

// POST /waste/entries
func (h *Handler) LogEntry(c *gin.Context) {
	var in LogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.service.Log(c.Request.Context(), in)
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidEnum):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("waste: log entry failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /waste/entries
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("waste: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GET /waste/analytics
func (h *Handler) GetAnalytics(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		log.Printf("waste: analytics failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GET /waste/suggestions
func (h *Handler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.service.Suggest(c.Request.Context())
	if err != nil {
		log.Printf("waste: suggestions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	if suggestions == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no waste logged yet"})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
