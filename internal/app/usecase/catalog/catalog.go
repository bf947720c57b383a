// Package catalog holds the static browsing data of the home screen.
package catalog

import "github.com/avGenie/go-food-bag/internal/app/entity"

type Catalog struct {
	Categories  []entity.Category
	Restaurants []entity.Restaurant
	Snacks      []entity.Snack
}

func Default() Catalog {
	const address = "rue hassan 2 hay elmasira"

	return Catalog{
		Categories: []entity.Category{
			{ID: 1, Name: "restaurant", TranslationKey: "restaurant", Href: "restaurants"},
			{ID: 2, Name: "supermarket", TranslationKey: "supermarket", Href: "supermarket"},
			{ID: 3, Name: "Fruits & Vegetables", TranslationKey: "fruits_vegetables", Href: "fruits-vegetables"},
			{ID: 4, Name: "custom", TranslationKey: "custom", Href: "custom"},
		},
		Restaurants: []entity.Restaurant{
			{ID: 1, Name: "Pokemone", Address: address, Rating: 4.6, OffersCount: 2, ProductsCount: 30},
			{ID: 2, Name: "Snack Darna", Address: address, Rating: 2.0, OffersCount: 10, ProductsCount: 15},
			{ID: 3, Name: "Snack Aboanasse", Address: address, Rating: 3.5, OffersCount: 0, ProductsCount: 12},
			{ID: 4, Name: "Pizza Palace", Address: address, Rating: 5, OffersCount: 1, ProductsCount: 23},
			{ID: 5, Name: "Burger Hub", Address: address, Rating: 2.4, OffersCount: 12, ProductsCount: 41},
			{ID: 6, Name: "Sushi Express", Address: address, Rating: 3.5, OffersCount: 6, ProductsCount: 17},
			{ID: 7, Name: "Taco Fiesta", Address: address, Rating: 4.6, OffersCount: 10, ProductsCount: 14},
		},
		Snacks: []entity.Snack{
			{ID: 1, Name: "Margherita Pizza", Restaurant: "Pizza Palace"},
			{ID: 2, Name: "Garlic Bread", Restaurant: "Pizza Palace"},
			{ID: 3, Name: "Double Cheeseburger", Restaurant: "Burger Hub"},
			{ID: 4, Name: "French Fries", Restaurant: "Burger Hub"},
			{ID: 5, Name: "California Roll", Restaurant: "Sushi Express"},
			{ID: 6, Name: "Beef Tacos", Restaurant: "Taco Fiesta"},
		},
	}
}
