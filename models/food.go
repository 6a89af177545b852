package models

// FoodItem is a search result from USDA FoodData Central with its
// per-100g nutrient profile already normalized. Not persisted; meals
// snapshot the values they need into Ingredient rows instead.
type FoodItem struct {
	FdcID       int         `json:"fdcId"`
	Description string      `json:"description"`
	BrandName   string      `json:"brandName"`
	DataType    string      `json:"dataType"`
	Nutrients   NutrientMap `json:"nutrients"`
}
