package services

import (
	"fmt"
	"math"

	"github.com/roybobrovich/meal-prep-app/apperrors"
	"github.com/roybobrovich/meal-prep-app/models"
)

// IngredientRequest is one ingredient of a meal being calculated or
// saved: a per-100g nutrient profile plus the amount in grams.
type IngredientRequest struct {
	FdcID       int                `json:"fdcId"`
	Description string             `json:"description"`
	BrandName   string             `json:"brandName"`
	Grams       float64            `json:"grams"`
	Nutrients   models.NutrientMap `json:"nutrients"`
}

// MealCalculation is the computed nutrition summary for one meal.
type MealCalculation struct {
	Total      models.NutrientMap `json:"total"`
	PerServing models.NutrientMap `json:"perServing"`
	Servings   int                `json:"servings"`
}

// CalculateMeal scales each ingredient's per-100g nutrient values by
// its weight, sums them across the meal and derives per-serving values.
//
// Accumulation runs at full precision; results are rounded to 2 decimal
// places only at the end. Nutrients missing from a profile contribute
// zero. An empty ingredient list yields all-zero totals. A non-positive
// serving count or ingredient weight fails validation with no partial
// result. Pure: same inputs always produce the same output.
func CalculateMeal(ingredients []IngredientRequest, servings int) (*MealCalculation, error) {
	if servings <= 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("servings must be a positive integer, got %d", servings))
	}

	totals := make(map[models.Nutrient]float64, len(models.TrackedNutrients))
	for i, ing := range ingredients {
		if ing.Grams <= 0 || math.IsNaN(ing.Grams) || math.IsInf(ing.Grams, 0) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("ingredient %d (%q): grams must be a positive number", i, ing.Description))
		}
		// USDA nutrient values are per 100g
		factor := ing.Grams / 100
		for _, n := range models.TrackedNutrients {
			totals[n] += ing.Nutrients[n] * factor
		}
	}

	result := &MealCalculation{
		Total:      make(models.NutrientMap, len(models.TrackedNutrients)),
		PerServing: make(models.NutrientMap, len(models.TrackedNutrients)),
		Servings:   servings,
	}
	for _, n := range models.TrackedNutrients {
		result.Total[n] = round2(totals[n])
		result.PerServing[n] = round2(totals[n] / float64(servings))
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
