package model

type CategoryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TranslationKey string `json:"translationKey"`
	Href           string `json:"href"`
}

type RestaurantResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Rating        float64 `json:"rating"`
	OffersCount   int     `json:"offersCount"`
	ProductsCount int     `json:"productsCount"`
}

type SuggestionResponse struct {
	Kind     string `json:"kind"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle,omitempty"`
	Href     string `json:"href"`
}

type SuggestionsResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}
