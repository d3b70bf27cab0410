package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{catalog: cat}
}

func parseScore(s string) (CarbonScore, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CarbonLow, true
	case "medium":
		return CarbonMedium, true
	case "high":
		return CarbonHigh, true
	}
	return "", false
}

// criteriaFromQuery maps the planner's query string onto filter
// criteria. Unknown carbon scores are rejected rather than ignored.
func criteriaFromQuery(c *gin.Context) (Criteria, bool) {
	crit := Criteria{
		Search:          c.Query("search"),
		RegionalCuisine: c.Query("regional_cuisine") == "true",
		Dietary: DietaryFilters{
			Vegetarian: c.Query("vegetarian") == "true",
			Vegan:      c.Query("vegan") == "true",
			GlutenFree: c.Query("gluten_free") == "true",
		},
	}

	if tags := c.Query("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				crit.EthnoTags = append(crit.EthnoTags, t)
			}
		}
	}

	if scores := c.Query("carbon"); scores != "" {
		for _, s := range strings.Split(scores, ",") {
			score, ok := parseScore(s)
			if !ok {
				return Criteria{}, false
			}
			crit.CarbonScores = append(crit.CarbonScores, score)
		}
	}

	if v := c.Query("price_min"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Criteria{}, false
		}
		crit.PriceMin = f
	}
	if v := c.Query("price_max"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Criteria{}, false
		}
		crit.PriceMax = f
	}

	return crit, true
}

// GET /dishes — full catalog, a named view, or a filter pass.
func (h *Handler) List(c *gin.Context) {
	switch c.Query("view") {
	case "":
	case "low-carbon":
		c.JSON(http.StatusOK, gin.H{"dishes": h.catalog.LowCarbon()})
		return
	case "vegetarian":
		c.JSON(http.StatusOK, gin.H{"dishes": h.catalog.Vegetarian()})
		return
	case "popular":
		c.JSON(http.StatusOK, gin.H{"dishes": h.catalog.Popular()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
		return
	}

	crit, ok := criteriaFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": Filter(h.catalog.All(), crit)})
}

// GET /dishes/:id
func (h *Handler) GetByID(c *gin.Context) {
	dish, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// GET /dishes/tags
func (h *Handler) Tags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": h.catalog.EthnoTags()})
}
