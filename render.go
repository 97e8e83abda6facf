package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/dish4u/models"
)

func money(v float64) string {
	return "₹" + humanize.FormatFloat("#,###.##", v)
}

func humanBytes(n int) string {
	return humanize.Bytes(uint64(n))
}

func renderConfirmation(w io.Writer, v models.OrderView) {
	fmt.Fprintf(w, "Order #%s\n", v.OrderID)
	if !v.OrderDate.IsZero() {
		fmt.Fprintf(w, "Placed:   %s (%s)\n", v.OrderDate.Local().Format("2 Jan 2006 15:04"), humanize.Time(v.OrderDate))
	}
	fmt.Fprintf(w, "Status:   %s\n", v.Status)
	fmt.Fprintf(w, "Deliver:  %s %s, %s\n", v.UserData.FirstName, v.UserData.LastName, v.UserData.Address)
	fmt.Fprintf(w, "Contact:  %s, %s\n\n", v.UserData.Email, v.UserData.Phone)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\tAMOUNT")
	for _, item := range v.Items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", item.ItemName, item.Quantity, money(item.Price), money(item.Price*float64(item.Quantity)))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nSubtotal:     %s\n", money(v.Subtotal))
	fmt.Fprintf(w, "Delivery fee: %s\n", money(v.DeliveryFee))
	fmt.Fprintf(w, "Total:        %s\n", money(v.Total))
}

// renderPending prints the local copy when the server copy is unavailable.
func renderPending(w io.Writer, p models.PendingOrder) {
	fmt.Fprintf(w, "Order #%s (%s)\n", p.OrderID, p.Status)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tNAME\tQTY\tPRICE")
	for _, item := range p.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.ItemNumber, item.Name, item.Quantity, money(item.UnitPrice))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %s\n", money(p.Total))
}

func renderDashboard(w io.Writer, orders []models.Order, stats models.DashboardStats) {
	fmt.Fprintf(w, "Total Orders: %s   Total Items: %s   Total Amount: %s\n\n",
		humanize.Comma(int64(stats.TotalOrders)), humanize.Comma(int64(stats.TotalItems)), money(stats.Revenue))

	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER ID\tFIRST NAME\tITEMS\tTOTAL\tSTATUS\tPLACED")
	for _, o := range orders {
		name := o.FirstName
		if strings.TrimSpace(name) == "" {
			name = "N/A"
		}
		placed := "-"
		if o.CreatedAt != nil {
			placed = humanize.Time(*o.CreatedAt)
		}
		fmt.Fprintf(tw, "#%s\t%s\t%d\t%s\t%s\t%s\n", o.OrderID, name, o.ItemCount(), money(o.Total), o.Status.OrDefault(), placed)
	}
	tw.Flush()
}
