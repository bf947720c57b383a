package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avGenie/go-food-bag/internal/app/config"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/auth"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/bag"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/catalog"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/notifications"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/router"
	"github.com/avGenie/go-food-bag/internal/app/controller/http/search"
	storage "github.com/avGenie/go-food-bag/internal/app/storage/api/model"
	usecase_catalog "github.com/avGenie/go-food-bag/internal/app/usecase/catalog"
	"github.com/avGenie/go-food-bag/internal/app/usecase/crypto"
	"github.com/avGenie/go-food-bag/internal/app/usecase/notification"
	usecase_search "github.com/avGenie/go-food-bag/internal/app/usecase/search"
	httputils "github.com/avGenie/go-food-bag/internal/app/usecase/utils"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage
}

func New(config config.Config, storage storage.Storage, feed *notification.Feed) *HTTPServer {
	issuer := crypto.NewTokenIssuer(config.JWTSecret, config.TokenTTL)
	c := usecase_catalog.Default()

	mux := router.CreateRouter(router.Handlers{
		Auth:          auth.New(storage, issuer),
		Bag:           bag.New(storage, feed),
		Notifications: notifications.New(feed),
		Search:        search.New(usecase_search.NewSuggester(c, config.SuggestionDelay)),
		Catalog:       catalog.New(c),
		TokenParser:   issuer,
		Revocations:   storage,
	})

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	return &HTTPServer{
		server:  server,
		config:  config,
		storage: storage,
	}
}

// Start serves until ctx is done and then shuts the server down gracefully.
func (s *HTTPServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting HTTP server", zap.String("address", s.config.NetAddr))

		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("fatal error while serving HTTP: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down HTTP server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("error while shutting down server: %w", err)
	}

	return nil
}
