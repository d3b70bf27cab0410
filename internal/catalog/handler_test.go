package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupDishRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(New(Seed()))

	r := gin.New()
	r.GET("/dishes", handler.List)
	r.GET("/dishes/tags", handler.Tags)
	r.GET("/dishes/:id", handler.GetByID)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dishIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Dishes []Dish `json:"dishes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return ids(resp.Dishes)
}

func TestListAllDishes(t *testing.T) {
	r := setupDishRouter()

	w := get(r, "/dishes")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := dishIDs(t, w); len(got) != len(Seed()) {
		t.Fatalf("expected %d dishes, got %d", len(Seed()), len(got))
	}
}

func TestListWithFilters(t *testing.T) {
	r := setupDishRouter()

	w := get(r, "/dishes?regional_cuisine=true&carbon=low&gluten_free=true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	got := dishIDs(t, w)
	want := []string{"2", "7", "9"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestListRejectsUnknownCarbonScore(t *testing.T) {
	r := setupDishRouter()

	if w := get(r, "/dishes?carbon=extreme"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListRejectsUnknownView(t *testing.T) {
	r := setupDishRouter()

	if w := get(r, "/dishes?view=mystery"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListLowCarbonView(t *testing.T) {
	r := setupDishRouter()

	w := get(r, "/dishes?view=low-carbon")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Dishes []Dish `json:"dishes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	for _, d := range resp.Dishes {
		if d.CarbonScore != CarbonLow {
			t.Fatalf("dish %s is %s in the low-carbon view", d.ID, d.CarbonScore)
		}
	}
}

func TestGetDishByID(t *testing.T) {
	r := setupDishRouter()

	if w := get(r, "/dishes/2"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/dishes/999"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestTagsEndpoint(t *testing.T) {
	r := setupDishRouter()

	w := get(r, "/dishes/tags")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Tags) == 0 {
		t.Fatal("expected tags")
	}
}
