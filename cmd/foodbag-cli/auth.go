package main

import (
	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/avGenie/go-food-bag/internal/app/model"
	"github.com/spf13/cobra"
)

var (
	flagFullName string
	flagPhone    string
	flagEmail    string
	flagPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and keep its token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.Register(commandContext(cmd), model.RegisterRequest{
			FullName:        flagFullName,
			Phone:           flagPhone,
			Email:           flagEmail,
			Password:        flagPassword,
			ConfirmPassword: flagPassword,
		})
		if err != nil {
			return failed(cmd, client.OpRegister, err)
		}

		return outputAuth(cmd, response)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with phone and password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.Login(commandContext(cmd), model.LoginRequest{
			Phone:    flagPhone,
			Password: flagPassword,
		})
		if err != nil {
			return failed(cmd, client.OpLogin, err)
		}

		return outputAuth(cmd, response)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		toast, err := api.Logout(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpLogout, err)
		}
		outputToast(cmd.OutOrStdout(), toast)

		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Profile(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpProfile, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), user)
		}
		formatUserText(cmd.OutOrStdout(), user)

		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.ForgotPassword(commandContext(cmd), flagEmail)
		if err != nil {
			return failed(cmd, client.OpForgotPassword, err)
		}
		outputToast(cmd.OutOrStdout(), client.SuccessToast("Email Sent", response.Message))

		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&flagFullName, "name", "", "full name")
	registerCmd.Flags().StringVar(&flagPhone, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&flagEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&flagPassword, "password", "", "password")

	loginCmd.Flags().StringVar(&flagPhone, "phone", "", "phone number")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "password")

	forgotPasswordCmd.Flags().StringVar(&flagEmail, "email", "", "email address")
}

func outputAuth(cmd *cobra.Command, response model.AuthResponse) error {
	if flagFormat == "json" {
		return outputJSON(cmd.OutOrStdout(), response)
	}

	outputToast(cmd.OutOrStdout(), client.SuccessToast("Success", response.Message))
	formatUserText(cmd.OutOrStdout(), response.User)

	return nil
}
