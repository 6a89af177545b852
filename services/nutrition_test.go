package services

import (
	"math"
	"reflect"
	"testing"

	"github.com/roybobrovich/meal-prep-app/apperrors"
	"github.com/roybobrovich/meal-prep-app/models"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateMeal(t *testing.T) {
	t.Run("it should compute totals and per-serving values for two ingredients", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{
				Description: "ingredient A",
				Grams:       200,
				Nutrients:   models.NutrientMap{models.NutrientCalories: 100, models.NutrientProtein: 5},
			},
			{
				Description: "ingredient B",
				Grams:       100,
				Nutrients:   models.NutrientMap{models.NutrientCalories: 50, models.NutrientProtein: 2},
			},
		}

		result, err := CalculateMeal(ingredients, 2)
		if err != nil {
			t.Fatal(err)
		}

		if result.Servings != 2 {
			t.Errorf("unexpected servings: (actual, expected) = (%d, 2)", result.Servings)
		}
		if result.Total[models.NutrientCalories] != 250 {
			t.Errorf("unexpected total calories: (actual, expected) = (%v, 250)", result.Total[models.NutrientCalories])
		}
		if result.Total[models.NutrientProtein] != 12 {
			t.Errorf("unexpected total protein: (actual, expected) = (%v, 12)", result.Total[models.NutrientProtein])
		}
		if result.PerServing[models.NutrientCalories] != 125 {
			t.Errorf("unexpected per-serving calories: (actual, expected) = (%v, 125)", result.PerServing[models.NutrientCalories])
		}
		if result.PerServing[models.NutrientProtein] != 6 {
			t.Errorf("unexpected per-serving protein: (actual, expected) = (%v, 6)", result.PerServing[models.NutrientProtein])
		}
		if result.Total[models.NutrientCarbs] != 0 || result.Total[models.NutrientSodium] != 0 {
			t.Errorf("nutrients absent from every profile should total 0, got %+v", result.Total)
		}
	})

	t.Run("it should return all-zero totals for an empty ingredient list", func(t *testing.T) {
		result, err := CalculateMeal(nil, 4)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Total) != len(models.TrackedNutrients) {
			t.Errorf("total should cover every tracked nutrient: (actual, expected) = (%d, %d)",
				len(result.Total), len(models.TrackedNutrients))
		}
		for _, n := range models.TrackedNutrients {
			if result.Total[n] != 0 {
				t.Errorf("total[%s] should be 0, got %v", n, result.Total[n])
			}
			if result.PerServing[n] != 0 {
				t.Errorf("perServing[%s] should be 0, got %v", n, result.PerServing[n])
			}
		}
	})

	t.Run("it should reject a non-positive serving count", func(t *testing.T) {
		for _, servings := range []int{0, -1} {
			result, err := CalculateMeal(nil, servings)
			if err == nil {
				t.Fatalf("no error for servings = %d", servings)
			}
			if !apperrors.IsType(err, apperrors.TypeValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
			if result != nil {
				t.Errorf("expected no result, got %+v", result)
			}
		}
	})

	t.Run("it should reject a non-positive ingredient weight without a partial result", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{Description: "fine", Grams: 100, Nutrients: models.NutrientMap{models.NutrientCalories: 100}},
			{Description: "broken", Grams: 0},
		}
		result, err := CalculateMeal(ingredients, 1)
		if err == nil {
			t.Fatal("no error for zero grams")
		}
		if !apperrors.IsType(err, apperrors.TypeValidation) {
			t.Errorf("expected a validation error, got %v", err)
		}
		if result != nil {
			t.Errorf("expected no partial result, got %+v", result)
		}

		ingredients[1].Grams = -50
		if _, err := CalculateMeal(ingredients, 1); err == nil {
			t.Error("no error for negative grams")
		}

		ingredients[1].Grams = math.NaN()
		if _, err := CalculateMeal(ingredients, 1); err == nil {
			t.Error("no error for NaN grams")
		}
	})

	t.Run("it should zero-fill nutrients missing from a profile", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{
				Description: "partial profile",
				Grams:       150,
				Nutrients:   models.NutrientMap{models.NutrientCalories: 200, models.NutrientProtein: 10},
			},
		}
		result, err := CalculateMeal(ingredients, 1)
		if err != nil {
			t.Fatal(err)
		}
		if result.Total[models.NutrientCalories] != 300 {
			t.Errorf("unexpected calories: (actual, expected) = (%v, 300)", result.Total[models.NutrientCalories])
		}
		if result.Total[models.NutrientProtein] != 15 {
			t.Errorf("unexpected protein: (actual, expected) = (%v, 15)", result.Total[models.NutrientProtein])
		}
		for _, n := range []models.Nutrient{models.NutrientCarbs, models.NutrientFat, models.NutrientFiber, models.NutrientSugar, models.NutrientSodium} {
			if result.Total[n] != 0 {
				t.Errorf("total[%s] should be 0, got %v", n, result.Total[n])
			}
		}
	})

	t.Run("it should ignore nutrient keys outside the tracked set", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{
				Description: "odd profile",
				Grams:       100,
				Nutrients: models.NutrientMap{
					models.NutrientCalories:     50,
					models.Nutrient("caffeine"): 40,
				},
			},
		}
		result, err := CalculateMeal(ingredients, 1)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Total[models.Nutrient("caffeine")]; ok {
			t.Error("untracked nutrient leaked into the totals")
		}
		if result.Total[models.NutrientCalories] != 50 {
			t.Errorf("unexpected calories: (actual, expected) = (%v, 50)", result.Total[models.NutrientCalories])
		}
	})

	t.Run("it should accumulate at full precision and round only the result", func(t *testing.T) {
		// 3.33 kcal/100g at 10g is 0.333 kcal; rounded per ingredient
		// the sum would be 0.99, rounded once at the end it is 1.0
		ing := IngredientRequest{
			Description: "tiny",
			Grams:       10,
			Nutrients:   models.NutrientMap{models.NutrientCalories: 3.33},
		}
		result, err := CalculateMeal([]IngredientRequest{ing, ing, ing}, 1)
		if err != nil {
			t.Fatal(err)
		}
		if result.Total[models.NutrientCalories] != 1.0 {
			t.Errorf("unexpected calories: (actual, expected) = (%v, 1.0)", result.Total[models.NutrientCalories])
		}
	})

	t.Run("it should keep perServing * servings equal to total within rounding tolerance", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{
				Description: "rice",
				Grams:       250,
				Nutrients: models.NutrientMap{
					models.NutrientCalories: 130,
					models.NutrientProtein:  2.7,
					models.NutrientCarbs:    28.2,
					models.NutrientSodium:   1,
				},
			},
			{
				Description: "chicken",
				Grams:       175,
				Nutrients: models.NutrientMap{
					models.NutrientCalories: 165,
					models.NutrientProtein:  31,
					models.NutrientFat:      3.6,
					models.NutrientSodium:   74,
				},
			},
		}

		for _, servings := range []int{1, 2, 3, 7} {
			result, err := CalculateMeal(ingredients, servings)
			if err != nil {
				t.Fatal(err)
			}
			// per-serving values are rounded to 2 decimals, so the
			// product can drift from the total by half a cent per serving
			tol := 0.005*float64(servings) + 1e-9
			for _, n := range models.TrackedNutrients {
				product := result.PerServing[n] * float64(servings)
				if !approxEqual(product, result.Total[n], tol) {
					t.Errorf("servings=%d nutrient=%s: perServing*servings = %v, total = %v",
						servings, n, product, result.Total[n])
				}
			}
		}
	})

	t.Run("it should be idempotent", func(t *testing.T) {
		ingredients := []IngredientRequest{
			{
				Description: "oats",
				Grams:       87.5,
				Nutrients: models.NutrientMap{
					models.NutrientCalories: 389,
					models.NutrientProtein:  16.9,
					models.NutrientFiber:    10.6,
				},
			},
		}

		first, err := CalculateMeal(ingredients, 3)
		if err != nil {
			t.Fatal(err)
		}
		second, err := CalculateMeal(ingredients, 3)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("results differ: (first, second) = (%+v, %+v)", first, second)
		}
	})
}
