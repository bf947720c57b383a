package router

import (
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/controller/http/auth"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/bag"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/catalog"
	middleware_auth "github.com/avGenie/go-food-bag/internal/app/controller/http/middleware/auth"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/middleware/logger"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/middleware/token"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/notifications"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/search"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth          auth.AuthUser
	Bag           bag.Bag
	Notifications notifications.Notifications
	Search        search.Search
	Catalog       catalog.Catalog

	TokenParser token.TokenParser
	Revocations token.RevocationChecker
}

func CreateRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(token.TokenParserMiddleware(h.TokenParser, h.Revocations))

		r.Post("/auth/register", h.Auth.Register())
		r.Post("/auth/login", h.Auth.Login())
		r.Post("/auth/forgot-password", h.Auth.ForgotPassword())

		r.Get("/catalog/categories", h.Catalog.Categories())
		r.Get("/catalog/restaurants", h.Catalog.Restaurants())
		r.Get("/search/suggestions", h.Search.Suggestions())

		r.Group(func(r chi.Router) {
			r.Use(middleware_auth.RequireAuth)

			r.Get("/auth/profile", h.Auth.Profile())
			r.Post("/auth/logout", h.Auth.Logout())

			r.Get("/bag", h.Bag.GetBag())
			r.Get("/bag/{id}", h.Bag.GetOrder())
			r.Put("/bag/{id}", h.Bag.SaveOrder())

			r.Get("/notifications", h.Notifications.List())
			r.Post("/notifications/{id}/read", h.Notifications.MarkRead())
			r.Delete("/notifications/{id}", h.Notifications.Remove())
			r.Delete("/notifications", h.Notifications.ClearAll())
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
