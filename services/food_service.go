package services

import (
	"context"

	"github.com/roybobrovich/meal-prep-app/logger"
	"github.com/roybobrovich/meal-prep-app/models"
)

// FoodService is the lookup facade: cache first, then the USDA API.
type FoodService struct {
	usda  *USDAService
	cache *SearchCache
}

func NewFoodService(usda *USDAService, cache *SearchCache) *FoodService {
	return &FoodService{usda: usda, cache: cache}
}

// Search looks up foods by free-text query.
func (s *FoodService) Search(ctx context.Context, query string) (*SearchResult, error) {
	if result, ok := s.cache.GetSearch(ctx, query); ok {
		logger.Debug("search cache hit", "query", query)
		return result, nil
	}

	result, err := s.usda.SearchFoods(ctx, query)
	if err != nil {
		return nil, err
	}
	s.cache.SetSearch(ctx, query, result)
	return result, nil
}

// GetFood fetches one food's detailed profile by FDC ID.
func (s *FoodService) GetFood(ctx context.Context, fdcID int) (*models.FoodItem, error) {
	return s.usda.GetFood(ctx, fdcID)
}
