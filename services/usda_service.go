package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/roybobrovich/meal-prep-app/apperrors"
	"github.com/roybobrovich/meal-prep-app/models"
)

// USDAService talks to the USDA FoodData Central API.
type USDAService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewUSDAService initializes the client from environment configuration.
func NewUSDAService() *USDAService {
	return &USDAService{
		apiKey: os.Getenv("USDA_API_KEY"),
		apiURL: strings.TrimRight(os.Getenv("USDA_API_URL"), "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchResult is the simplified /foods/search response.
type SearchResult struct {
	TotalResults   int               `json:"totalResults"`
	CurrentResults int               `json:"currentResults"`
	Foods          []models.FoodItem `json:"foods"`
}

type searchResponse struct {
	TotalHits int `json:"totalHits"`
	Foods     []struct {
		FdcID         int              `json:"fdcId"`
		Description   string           `json:"description"`
		BrandName     string           `json:"brandName"`
		DataType      string           `json:"dataType"`
		FoodNutrients []searchNutrient `json:"foodNutrients"`
	} `json:"foods"`
}

type searchNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// SearchFoods queries /foods/search and normalizes each hit's nutrient
// payload into the tracked per-100g profile.
func (s *USDAService) SearchFoods(ctx context.Context, query string) (*SearchResult, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	q.Set("query", query)
	q.Set("pageSize", "10")
	q.Add("dataType", "Foundation")
	q.Add("dataType", "SR Legacy")

	body, err := s.get(ctx, fmt.Sprintf("%s/foods/search?%s", s.apiURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.TypeExternal, "failed to parse USDA search response")
	}

	foods := make([]models.FoodItem, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		foods = append(foods, models.FoodItem{
			FdcID:       f.FdcID,
			Description: f.Description,
			BrandName:   f.BrandName,
			DataType:    f.DataType,
			Nutrients:   normalizeSearchNutrients(f.FoodNutrients),
		})
	}
	return &SearchResult{
		TotalResults:   sr.TotalHits,
		CurrentResults: len(foods),
		Foods:          foods,
	}, nil
}

// The /food/{id} endpoint nests nutrient metadata one level deeper than
// the search endpoint does.
type foodDetailResponse struct {
	FdcID         int    `json:"fdcId"`
	Description   string `json:"description"`
	BrandName     string `json:"brandName"`
	DataType      string `json:"dataType"`
	FoodNutrients []struct {
		Nutrient struct {
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
		Amount float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// GetFood fetches a single food by its FoodData Central ID.
func (s *USDAService) GetFood(ctx context.Context, fdcID int) (*models.FoodItem, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)

	body, err := s.get(ctx, fmt.Sprintf("%s/food/%d?%s", s.apiURL, fdcID, q.Encode()))
	if err != nil {
		return nil, err
	}

	var fr foodDetailResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.TypeExternal, "failed to parse USDA food response")
	}

	nutrients := models.ZeroNutrients()
	for _, fn := range fr.FoodNutrients {
		if n, ok := mapNutrientName(fn.Nutrient.Name, fn.Nutrient.UnitName); ok {
			nutrients[n] = fn.Amount
		}
	}
	return &models.FoodItem{
		FdcID:       fr.FdcID,
		Description: fr.Description,
		BrandName:   fr.BrandName,
		DataType:    fr.DataType,
		Nutrients:   nutrients,
	}, nil
}

func (s *USDAService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.TypeInternal, "failed to create USDA request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, apperrors.NewTimeoutError("USDA API request")
		}
		return nil, apperrors.NewExternalAPIError(err, "USDA")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalAPIError(err, "USDA")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.TypeExternal,
			fmt.Sprintf("USDA API error %d: %s", resp.StatusCode, string(body)))
	}
	return body, nil
}

// USDA nutrient names mapped into the tracked set. Matching is by
// substring, following how USDA varies names across data types
// ("Total Sugars" vs "Sugars, total including NLEA").
var usdaNutrientNames = []struct {
	match    string
	nutrient models.Nutrient
}{
	{"Energy", models.NutrientCalories},
	{"Protein", models.NutrientProtein},
	{"Total lipid (fat)", models.NutrientFat},
	{"Carbohydrate, by difference", models.NutrientCarbs},
	{"Fiber, total dietary", models.NutrientFiber},
	{"Total Sugars", models.NutrientSugar},
	{"Sugars, total", models.NutrientSugar},
	{"Sodium, Na", models.NutrientSodium},
}

// mapNutrientName resolves a USDA nutrient name to a tracked nutrient.
// Energy rows are taken only in kcal; USDA reports the same food's
// energy in both KCAL and kJ rows.
func mapNutrientName(name, unit string) (models.Nutrient, bool) {
	for _, m := range usdaNutrientNames {
		if strings.Contains(name, m.match) {
			if m.nutrient == models.NutrientCalories && !strings.EqualFold(unit, "kcal") {
				return "", false
			}
			return m.nutrient, true
		}
	}
	return "", false
}

func normalizeSearchNutrients(raw []searchNutrient) models.NutrientMap {
	nutrients := models.ZeroNutrients()
	for _, fn := range raw {
		if n, ok := mapNutrientName(fn.NutrientName, fn.UnitName); ok {
			nutrients[n] = fn.Value
		}
	}
	return nutrients
}
