package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/avGenie/go-food-bag/internal/app/converter"
	"github.com/avGenie/go-food-bag/internal/app/entity"
	"github.com/avGenie/go-food-bag/internal/app/usecase/bag"
	"github.com/spf13/cobra"
)

var errInvalidEdit = errors.New("invalid item edit")

var (
	flagSet     []string
	flagRemove  []int64
	flagAddress string
	flagDryRun  bool
)

var bagCmd = &cobra.Command{
	Use:   "bag",
	Short: "List orders grouped by day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := api.Bag(commandContext(cmd))
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), response)
		}
		formatBagText(cmd.OutOrStdout(), response)

		return nil
	},
}

var bagShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show an order with its price breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		response, err := api.Order(commandContext(cmd), id)
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), response)
		}
		formatOrderText(cmd.OutOrStdout(), response)

		return nil
	},
}

var bagEditCmd = &cobra.Command{
	Use:   "edit <order-id>",
	Short: "Change item quantities of an order and save it",
	Example: `  foodbag-cli bag edit 1 --set 2=3
  foodbag-cli bag edit 1 --remove 3 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		edits, err := parseItemEdits(flagSet)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		response, err := api.Order(ctx, id)
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		order, err := converter.ConvertOrderResponseToOrder(response)
		if err != nil {
			return err
		}

		order, err = applyItemEdits(order, edits, flagRemove)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("address") {
			order.Address = flagAddress
		}

		if flagDryRun {
			preview := converter.ConvertOrderToResponse(order, bag.PriceOrder(order))
			if flagFormat == "json" {
				return outputJSON(cmd.OutOrStdout(), preview)
			}
			formatOrderText(cmd.OutOrStdout(), preview)

			return nil
		}

		saved, err := api.SaveOrder(ctx, id, converter.ConvertOrderToSaveRequest(order))
		if err != nil {
			return failed(cmd, client.OpGeneric, err)
		}

		if flagFormat == "json" {
			return outputJSON(cmd.OutOrStdout(), saved)
		}
		outputToast(cmd.OutOrStdout(), client.SuccessToast("Order Saved", saved.Breakdown.Description))

		return nil
	},
}

func init() {
	bagEditCmd.Flags().StringArrayVar(&flagSet, "set", nil, "item quantity as item=qty (repeatable)")
	bagEditCmd.Flags().Int64SliceVar(&flagRemove, "remove", nil, "item id to remove (repeatable)")
	bagEditCmd.Flags().StringVar(&flagAddress, "address", "", "new delivery address")
	bagEditCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the recomputed order without saving")

	bagCmd.AddCommand(bagShowCmd, bagEditCmd)
}

type itemEdit struct {
	itemID   int64
	quantity int
}

func parseOrderID(raw string) (entity.OrderID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", raw)
	}

	return entity.OrderID(id), nil
}

func parseItemEdits(values []string) ([]itemEdit, error) {
	edits := make([]itemEdit, 0, len(values))
	for _, value := range values {
		rawID, rawQuantity, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected item=qty", errInvalidEdit, value)
		}

		itemID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: item id: %w", errInvalidEdit, value, err)
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
		if err != nil {
			return nil, fmt.Errorf("%w %q: quantity: %w", errInvalidEdit, value, err)
		}

		edits = append(edits, itemEdit{itemID: itemID, quantity: quantity})
	}

	return edits, nil
}

func applyItemEdits(order entity.Order, edits []itemEdit, removals []int64) (entity.Order, error) {
	var err error
	for _, edit := range edits {
		order, err = bag.UpdateItemQuantity(order, edit.itemID, edit.quantity)
		if err != nil {
			return order, fmt.Errorf("item %d: %w", edit.itemID, err)
		}
	}

	for _, itemID := range removals {
		order, err = bag.RemoveItem(order, itemID)
		if err != nil {
			return order, fmt.Errorf("item %d: %w", itemID, err)
		}
	}

	return order, nil
}
