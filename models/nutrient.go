package models

// Nutrient is one of the fixed nutrient names the calculator tracks.
// USDA values for the macros are grams per 100g, calories are kcal per
// 100g and sodium is mg per 100g; profiles are normalized into this set
// at the API boundary.
type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientFat      Nutrient = "fat"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFiber    Nutrient = "fiber"
	NutrientSugar    Nutrient = "sugar"
	NutrientSodium   Nutrient = "sodium"
)

// TrackedNutrients lists every nutrient summaries are computed for.
var TrackedNutrients = []Nutrient{
	NutrientCalories,
	NutrientProtein,
	NutrientFat,
	NutrientCarbs,
	NutrientFiber,
	NutrientSugar,
	NutrientSodium,
}

// NutrientMap maps nutrient names to amounts. Missing keys read as 0.
type NutrientMap map[Nutrient]float64

// ZeroNutrients returns a map with every tracked nutrient set to 0.
func ZeroNutrients() NutrientMap {
	m := make(NutrientMap, len(TrackedNutrients))
	for _, n := range TrackedNutrients {
		m[n] = 0
	}
	return m
}
