package main

import (
	"fmt"
	"strconv"

	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications grouped by day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.Notifications(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), response)
		}
		formatNotificationsText(cmd.OutOrStdout(), response)

		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseNotificationID(args[0])
		if err != nil {
			return err
		}

		if err := api.MarkNotificationRead(commandContext(cmd), id); err != nil {
			return failed(cmd, client.OpGeneric, err)
		}
		outputToast(cmd.OutOrStdout(), client.SuccessToast("Notification", "Marked as read."))

		return nil
	},
}

var notificationsRemoveCmd = &cobra.Command{
	Use:   "remove <notification-id>",
	Short: "Remove a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseNotificationID(args[0])
		if err != nil {
			return err
		}

		if err := api.RemoveNotification(commandContext(cmd), id); err != nil {
			return failed(cmd, client.OpGeneric, err)
		}
		outputToast(cmd.OutOrStdout(), client.SuccessToast("Notification", "Removed."))

		return nil
	},
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every notification",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.ClearNotifications(commandContext(cmd)); err != nil {
			return failed(cmd, client.OpGeneric, err)
		}
		outputToast(cmd.OutOrStdout(), client.SuccessToast("Notifications", "All notifications cleared."))

		return nil
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsReadCmd, notificationsRemoveCmd, notificationsClearCmd)
}

func parseNotificationID(raw string) (entity.NotificationID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid notification id %q", raw)
	}

	return entity.NotificationID(id), nil
}
