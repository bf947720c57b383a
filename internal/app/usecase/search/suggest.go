package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/go-food-bag/internal/app/usecase/catalog"
)

const DefaultLimit = 8

type Kind string

const (
	KindCategory   Kind = `category`
	KindRestaurant Kind = `restaurant`
	KindSnack      Kind = `snack`
)

type Suggestion struct {
	Kind     Kind
	ID       int64
	Name     string
	Subtitle string
	Href     string
}

type Suggester struct {
	corpus []Suggestion
	delay  time.Duration
}

// NewSuggester indexes the catalog in its own order: categories, restaurants, snacks.
func NewSuggester(c catalog.Catalog, delay time.Duration) *Suggester {
	corpus := make([]Suggestion, 0, len(c.Categories)+len(c.Restaurants)+len(c.Snacks))

	for _, category := range c.Categories {
		corpus = append(corpus, Suggestion{
			Kind: KindCategory,
			ID:   category.ID,
			Name: category.Name,
			Href: fmt.Sprintf("/%s", category.Href),
		})
	}
	for _, restaurant := range c.Restaurants {
		corpus = append(corpus, Suggestion{
			Kind:     KindRestaurant,
			ID:       restaurant.ID,
			Name:     restaurant.Name,
			Subtitle: restaurant.Address,
			Href:     fmt.Sprintf("/restaurants/%d", restaurant.ID),
		})
	}
	for _, snack := range c.Snacks {
		corpus = append(corpus, Suggestion{
			Kind:     KindSnack,
			ID:       snack.ID,
			Name:     snack.Name,
			Subtitle: snack.Restaurant,
			Href:     fmt.Sprintf("/restaurants/foods/%d", snack.ID),
		})
	}

	return &Suggester{
		corpus: corpus,
		delay:  delay,
	}
}

// Suggest waits for the configured delay first and gives up as soon as ctx is done.
func (s *Suggester) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) == 0 {
		return []Suggestion{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Suggestion, 0, limit)
	for _, suggestion := range s.corpus {
		if !strings.Contains(strings.ToLower(suggestion.Name), query) {
			continue
		}

		out = append(out, suggestion)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}
