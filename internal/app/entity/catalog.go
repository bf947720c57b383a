package entity

type Category struct {
	ID             int64
	Name           string
	TranslationKey string
	Href           string
}

type Restaurant struct {
	ID            int64
	Name          string
	Address       string
	Rating        float64
	OffersCount   int
	ProductsCount int
}

type Snack struct {
	ID         int64
	Name       string
	Restaurant string
}
