package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/roybobrovich/meal-prep-app/apperrors"
	"github.com/roybobrovich/meal-prep-app/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// SaveMealRequest is the body of POST /api/meals. Totals are not
// accepted from the client; they are recomputed at save time so stored
// snapshots always satisfy perServing * servings == total.
type SaveMealRequest struct {
	Name        string              `json:"name"`
	Servings    int                 `json:"servings"`
	Ingredients []IngredientRequest `json:"ingredients"`
}

// SaveMeal computes the nutrition snapshot and stores the meal with its
// ingredients in one create.
func (s *MealService) SaveMeal(ctx context.Context, req SaveMealRequest) (*models.Meal, error) {
	calc, err := CalculateMeal(req.Ingredients, req.Servings)
	if err != nil {
		return nil, err
	}

	meal := buildMeal(req, calc)
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return meal, nil
}

// buildMeal maps a save request and its computed summary onto the
// persisted row shape.
func buildMeal(req SaveMealRequest, calc *MealCalculation) *models.Meal {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Unnamed Meal"
	}

	ingredients := make([]models.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, models.Ingredient{
			FdcID:       ing.FdcID,
			Description: ing.Description,
			BrandName:   ing.BrandName,
			Grams:       ing.Grams,
			Calories:    ing.Nutrients[models.NutrientCalories],
			Protein:     ing.Nutrients[models.NutrientProtein],
			Fat:         ing.Nutrients[models.NutrientFat],
			Carbs:       ing.Nutrients[models.NutrientCarbs],
			Fiber:       ing.Nutrients[models.NutrientFiber],
			Sugar:       ing.Nutrients[models.NutrientSugar],
			Sodium:      ing.Nutrients[models.NutrientSodium],
		})
	}

	return &models.Meal{
		Name:     name,
		Servings: calc.Servings,

		TotalCalories: calc.Total[models.NutrientCalories],
		TotalProtein:  calc.Total[models.NutrientProtein],
		TotalFat:      calc.Total[models.NutrientFat],
		TotalCarbs:    calc.Total[models.NutrientCarbs],
		TotalFiber:    calc.Total[models.NutrientFiber],
		TotalSugar:    calc.Total[models.NutrientSugar],
		TotalSodium:   calc.Total[models.NutrientSodium],

		CaloriesPerServing: calc.PerServing[models.NutrientCalories],
		ProteinPerServing:  calc.PerServing[models.NutrientProtein],
		FatPerServing:      calc.PerServing[models.NutrientFat],
		CarbsPerServing:    calc.PerServing[models.NutrientCarbs],
		FiberPerServing:    calc.PerServing[models.NutrientFiber],
		SugarPerServing:    calc.PerServing[models.NutrientSugar],
		SodiumPerServing:   calc.PerServing[models.NutrientSodium],

		Ingredients: ingredients,
	}
}

// ListMeals returns all saved meals, newest first, with ingredients.
func (s *MealService) ListMeals(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Order("created_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return meals, nil
}

// GetMeal returns a single meal by ID.
func (s *MealService) GetMeal(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("Meal not found")
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &meal, nil
}

// DeleteMeal removes a meal and its ingredients.
func (s *MealService) DeleteMeal(ctx context.Context, id uint) error {
	var meal models.Meal
	err := s.db.WithContext(ctx).First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError("Meal not found")
	}
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	if err := s.db.WithContext(ctx).
		Where("meal_id = ?", meal.ID).
		Delete(&models.Ingredient{}).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if err := s.db.WithContext(ctx).Delete(&meal).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
