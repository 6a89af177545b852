package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCalculateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/calculate", CalculateMeal)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type calculateResponse struct {
	Total      map[string]float64 `json:"total"`
	PerServing map[string]float64 `json:"perServing"`
	Servings   int                `json:"servings"`
}

func TestCalculateEndpoint(t *testing.T) {
	r := newCalculateRouter()

	t.Run("it should calculate totals and per-serving values", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{
			"ingredients": [
				{"fdcId": 1, "description": "A", "grams": 200, "nutrients": {"calories": 100, "protein": 5}},
				{"fdcId": 2, "description": "B", "grams": 100, "nutrients": {"calories": 50, "protein": 2}}
			],
			"servings": 2
		}`)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: (actual, expected) = (%d, %d); body = %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp calculateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Servings != 2 {
			t.Errorf("unexpected servings: %d", resp.Servings)
		}
		if resp.Total["calories"] != 250 || resp.Total["protein"] != 12 {
			t.Errorf("unexpected totals: %+v", resp.Total)
		}
		if resp.PerServing["calories"] != 125 || resp.PerServing["protein"] != 6 {
			t.Errorf("unexpected per-serving values: %+v", resp.PerServing)
		}
	})

	t.Run("it should default servings to 1 when omitted", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{
			"ingredients": [
				{"fdcId": 1, "description": "A", "grams": 100, "nutrients": {"calories": 80}}
			]
		}`)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d; body = %s", w.Code, w.Body.String())
		}

		var resp calculateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Servings != 1 {
			t.Errorf("unexpected servings: (actual, expected) = (%d, 1)", resp.Servings)
		}
		if resp.Total["calories"] != 80 || resp.PerServing["calories"] != 80 {
			t.Errorf("unexpected values: %+v / %+v", resp.Total, resp.PerServing)
		}
	})

	t.Run("it should accept an empty ingredient list", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{"ingredients": [], "servings": 3}`)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d; body = %s", w.Code, w.Body.String())
		}

		var resp calculateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		for n, v := range resp.Total {
			if v != 0 {
				t.Errorf("total[%s] should be 0, got %v", n, v)
			}
		}
	})

	t.Run("it should reject non-positive grams with 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{
			"ingredients": [{"fdcId": 1, "description": "A", "grams": -5, "nutrients": {}}],
			"servings": 1
		}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: (actual, expected) = (%d, %d)", w.Code, http.StatusBadRequest)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp["error"] == "" {
			t.Error("expected an error message in the body")
		}
	})

	t.Run("it should reject negative servings with 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{"ingredients": [], "servings": -2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: (actual, expected) = (%d, %d)", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("it should reject malformed JSON with 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/calculate", `{"ingredients": `)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: (actual, expected) = (%d, %d)", w.Code, http.StatusBadRequest)
		}
	})
}
