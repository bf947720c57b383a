package main

import (
	"strings"

	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/spf13/cobra"
)

var flagLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Suggest categories, restaurants and snacks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.Suggestions(commandContext(cmd), strings.Join(args, " "), flagLimit)
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), response)
		}
		formatSuggestionsText(cmd.OutOrStdout(), response)

		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := api.Categories(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), categories)
		}
		formatCategoriesText(cmd.OutOrStdout(), categories)

		return nil
	},
}

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List catalog restaurants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := api.Restaurants(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), restaurants)
		}
		formatRestaurantsText(cmd.OutOrStdout(), restaurants)

		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum number of suggestions (0 = server default)")
}
