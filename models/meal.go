package models

import (
	"time"

	"gorm.io/gorm"
)

// One saved meal with its computed nutrition snapshot. Meals are never
// edited in place; they are created once and deleted whole.
type Meal struct {
	gorm.Model
	Name     string `gorm:"type:varchar(255);not null"`
	Servings int    `gorm:"default:1"`

	TotalCalories float64
	TotalProtein  float64
	TotalFat      float64
	TotalCarbs    float64
	TotalFiber    float64
	TotalSugar    float64
	TotalSodium   float64

	CaloriesPerServing float64
	ProteinPerServing  float64
	FatPerServing      float64
	CarbsPerServing    float64
	FiberPerServing    float64
	SugarPerServing    float64
	SodiumPerServing   float64

	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE"`
}

// Each Ingredient stores the per-100g nutrient snapshot it was saved
// with, so a meal stays stable even if USDA data changes later.
type Ingredient struct {
	gorm.Model
	MealID uint `gorm:"not null;index"`

	FdcID       int    `gorm:"not null"`
	Description string `gorm:"type:varchar(500);not null"`
	BrandName   string `gorm:"type:varchar(255)"`

	Grams float64 `gorm:"not null"` // amount in grams

	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}

// TotalNutrients returns the stored meal totals as a nutrient map.
func (m *Meal) TotalNutrients() NutrientMap {
	return NutrientMap{
		NutrientCalories: m.TotalCalories,
		NutrientProtein:  m.TotalProtein,
		NutrientFat:      m.TotalFat,
		NutrientCarbs:    m.TotalCarbs,
		NutrientFiber:    m.TotalFiber,
		NutrientSugar:    m.TotalSugar,
		NutrientSodium:   m.TotalSodium,
	}
}

// PerServingNutrients returns the stored per-serving values.
func (m *Meal) PerServingNutrients() NutrientMap {
	return NutrientMap{
		NutrientCalories: m.CaloriesPerServing,
		NutrientProtein:  m.ProteinPerServing,
		NutrientFat:      m.FatPerServing,
		NutrientCarbs:    m.CarbsPerServing,
		NutrientFiber:    m.FiberPerServing,
		NutrientSugar:    m.SugarPerServing,
		NutrientSodium:   m.SodiumPerServing,
	}
}

// Nutrients returns the ingredient's per-100g snapshot.
func (i *Ingredient) Nutrients() NutrientMap {
	return NutrientMap{
		NutrientCalories: i.Calories,
		NutrientProtein:  i.Protein,
		NutrientFat:      i.Fat,
		NutrientCarbs:    i.Carbs,
		NutrientFiber:    i.Fiber,
		NutrientSugar:    i.Sugar,
		NutrientSodium:   i.Sodium,
	}
}

// MealResponse is the JSON shape the frontend consumes.
type MealResponse struct {
	ID                  uint                 `json:"id"`
	Name                string               `json:"name"`
	Servings            int                  `json:"servings"`
	NutritionTotal      NutrientMap          `json:"nutritionTotal"`
	NutritionPerServing NutrientMap          `json:"nutritionPerServing"`
	Ingredients         []IngredientResponse `json:"ingredients"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

type IngredientResponse struct {
	ID          uint        `json:"id"`
	FdcID       int         `json:"fdcId"`
	Description string      `json:"description"`
	BrandName   string      `json:"brandName"`
	Grams       float64     `json:"grams"`
	Nutrients   NutrientMap `json:"nutrients"`
}

func (m *Meal) ToResponse() MealResponse {
	ingredients := make([]IngredientResponse, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, ing.ToResponse())
	}
	return MealResponse{
		ID:                  m.ID,
		Name:                m.Name,
		Servings:            m.Servings,
		NutritionTotal:      m.TotalNutrients(),
		NutritionPerServing: m.PerServingNutrients(),
		Ingredients:         ingredients,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (i *Ingredient) ToResponse() IngredientResponse {
	return IngredientResponse{
		ID:          i.ID,
		FdcID:       i.FdcID,
		Description: i.Description,
		BrandName:   i.BrandName,
		Grams:       i.Grams,
		Nutrients:   i.Nutrients(),
	}
}
