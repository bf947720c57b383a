package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/avGenie/go-food-bag/internal/app/config"
	"github.com/avGenie/go-food-bag/internal/app/logger"
	"github.com/avGenie/go-food-bag/internal/app/storage/device"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagBaseURL string
	flagStore   string
	flagFormat  string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

var (
	api   *client.Client
	store *device.Storage
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "foodbag-cli",
	Short:         "Terminal client of the foodbag service",
	Long:          "Browse the bag, edit orders, search the catalog and read notifications of a foodbag account.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "api", "", "api base url (default: FOODBAG_API_BASE_URL or http://localhost:3000/api)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "device storage path (default: FOODBAG_STORE or foodbag.db)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, profileCmd, forgotPasswordCmd)
	rootCmd.AddCommand(bagCmd)
	rootCmd.AddCommand(searchCmd, categoriesCmd, restaurantsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(languageCmd)
}

func setup(cmd *cobra.Command) error {
	cfg, err := config.InitClientConfig()
	if err != nil {
		return err
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("error while initializing logger: %w", err)
	}

	if cmd.Flags().Changed("api") {
		cfg.APIBaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("store") {
		cfg.StorePath = flagStore
	}

	if store != nil {
		_ = store.Close()
	}
	store, err = device.New(cfg.StorePath)
	if err != nil {
		return err
	}
	api = client.New(cfg.APIBaseURL, cfg.Timeout, store)

	zap.L().Debug("client configured", zap.String("api", cfg.APIBaseURL), zap.String("store", cfg.StorePath))

	return nil
}

// failed prints the toast of a failed call and marks the error as reported.
func failed(cmd *cobra.Command, op client.Operation, err error) error {
	outputToast(cmd.ErrOrStderr(), client.ErrorToast(op, err))
	if fields := client.FieldErrors(err); len(fields) != 0 {
		outputFieldErrors(cmd.ErrOrStderr(), fields)
	}
	errorHandled = true

	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
