package catalog

import (
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/usecase/catalog"
	writer "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
)

type Catalog struct {
	catalog catalog.Catalog
}

func New(c catalog.Catalog) Catalog {
	return Catalog{
		catalog: c,
	}
}

func (c *Catalog) Categories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writer.WriteJSON(w, http.StatusOK, converter.ConvertCategoriesToResponse(c.catalog.Categories))
	}
}

func (c *Catalog) Restaurants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writer.WriteJSON(w, http.StatusOK, converter.ConvertRestaurantsToResponse(c.catalog.Restaurants))
	}
}
