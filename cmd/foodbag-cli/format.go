package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/avGenie/go-food-bag/internal/app/client"
	"github.com/avGenie/go-food-bag/internal/app/model"
)

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	}

	return fmt.Errorf("unsupported format %q: use json or text", format)
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func outputToast(w io.Writer, toast client.Toast) {
	if flagFormat == "json" {
		_ = outputJSON(w, toast)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", toast.Title, toast.Description)
}

func outputFieldErrors(w io.Writer, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", name, fields[name])
	}
}

func formatUserText(w io.Writer, user model.UserResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", user.ID)
	fmt.Fprintf(tw, "NAME\t%s\n", user.FullName)
	fmt.Fprintf(tw, "PHONE\t%s\n", user.Phone)
	fmt.Fprintf(tw, "EMAIL\t%s\n", user.Email)
	fmt.Fprintf(tw, "SINCE\t%s\n", user.CreatedAt)
	tw.Flush()
}

// formatBagText prints the bag the way the bag screen lists it: day headers,
// then one line per order.
func formatBagText(w io.Writer, bag model.BagResponse) {
	fmt.Fprintf(w, "Active: %d  Past: %d  Total: %d\n", bag.ActiveCount, bag.DeliveredCount, bag.TotalCount)

	for _, section := range bag.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, section.Day)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNUMBER\tRESTAURANT\tSTATUS\tTOTAL")
		for _, order := range section.Orders {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n",
				order.ID, order.OrderNumber, order.Restaurant, order.StatusText, order.Breakdown.Description)
		}
		tw.Flush()
	}
}

func formatOrderText(w io.Writer, order model.OrderResponse) {
	fmt.Fprintf(w, "%s %s  %s\n", order.RestaurantLogo, order.Restaurant, order.OrderNumber)
	fmt.Fprintf(w, "Status: %s\n", order.StatusText)
	fmt.Fprintf(w, "Address: %s\n", order.Address)
	fmt.Fprintf(w, "Customer: %s %s\n", order.Customer.FullName, order.Customer.Phone)
	if order.DeliveryPerson != nil {
		fmt.Fprintf(w, "Delivery: %s %s (%s)\n", order.DeliveryPerson.Name, order.DeliveryPerson.Phone, order.DeliveryPerson.Vehicle)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tQTY\tPRICE\tLINE")
	for _, item := range order.Items {
		price, line := item.UnitPrice, item.LineTotal
		if item.Pricing == "weight" {
			price, line = "by weight", "at checkout"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", item.ID, item.Name, item.Quantity, price, line)
	}
	tw.Flush()

	fmt.Fprintln(w)
	formatBreakdownText(w, order.Breakdown)
}

func formatBreakdownText(w io.Writer, breakdown model.PriceBreakdownResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Subtotal\t$%s\t\n", breakdown.Subtotal)
	fmt.Fprintf(tw, "Delivery fee\t$%s\t\n", breakdown.DeliveryFee)
	fmt.Fprintf(tw, "Tax\t$%s\t\n", breakdown.Tax)
	tw.Flush()
	fmt.Fprintln(w, breakdown.Description)
}

func formatSuggestionsText(w io.Writer, suggestions model.SuggestionsResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tDETAILS\tLINK")
	for _, s := range suggestions.Suggestions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Kind, s.Name, s.Subtitle, s.Href)
	}
	tw.Flush()
}

func formatNotificationsText(w io.Writer, feed model.NotificationsResponse) {
	fmt.Fprintf(w, "Unread: %d\n", feed.Unread)

	for _, section := range feed.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, section.Day)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, n := range section.Notifications {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\t%s\n", marker, n.ID, n.Time, n.Title, n.Description)
		}
		tw.Flush()
	}
}

func formatCategoriesText(w io.Writer, categories []model.CategoryResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLINK")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t/%s\n", c.ID, c.Name, c.Href)
	}
	tw.Flush()
}

func formatRestaurantsText(w io.Writer, restaurants []model.RestaurantResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tOFFERS\tPRODUCTS\tADDRESS")
	for _, r := range restaurants {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%d\t%d\t%s\n", r.ID, r.Name, r.Rating, r.OffersCount, r.ProductsCount, r.Address)
	}
	tw.Flush()
}
