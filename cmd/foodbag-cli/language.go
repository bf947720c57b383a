package main

import (
	"fmt"

	"github.com/avGenie/go-food-bag/internal/app/storage/device"
	"github.com/spf13/cobra"
)

var languageCmd = &cobra.Command{
	Use:   "language",
	Short: "Show the selected language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		language, err := store.Language(commandContext(cmd))
		if err != nil {
			return err
		}

		return outputLanguage(cmd, language)
	},
}

var languageSetCmd = &cobra.Command{
	Use:       "set <en|fr|ar>",
	Short:     "Select the language",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(device.LanguageEnglish), string(device.LanguageFrench), string(device.LanguageArabic)},
	RunE: func(cmd *cobra.Command, args []string) error {
		language, err := device.ParseLanguage(args[0])
		if err != nil {
			return err
		}

		if err := store.SetLanguage(commandContext(cmd), language); err != nil {
			return err
		}

		return outputLanguage(cmd, language)
	},
}

func init() {
	languageCmd.AddCommand(languageSetCmd)
}

func outputLanguage(cmd *cobra.Command, language device.Language) error {
	if flagFormat == "json" {
		return outputJSON(cmd.OutOrStdout(), map[string]string{"language": string(language)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), language)

	return nil
}
