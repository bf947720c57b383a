package converter

import (
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func ConvertCategoriesToResponse(categories []entity.Category) []model.CategoryResponse {
	out := make([]model.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, model.CategoryResponse{
			ID:             category.ID,
			Name:           category.Name,
			TranslationKey: category.TranslationKey,
			Href:           category.Href,
		})
	}

	return out
}

func ConvertRestaurantsToResponse(restaurants []entity.Restaurant) []model.RestaurantResponse {
	out := make([]model.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, model.RestaurantResponse{
			ID:            restaurant.ID,
			Name:          restaurant.Name,
			Address:       restaurant.Address,
			Rating:        restaurant.Rating,
			OffersCount:   restaurant.OffersCount,
			ProductsCount: restaurant.ProductsCount,
		})
	}

	return out
}
