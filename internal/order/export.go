// AngelaMos | 2026
// export.go

package order

import (
	"strings"

	"github.com/carterperez-dev/studio-ledger/internal/report"
)

func exportSheets(details []Detail) []report.Sheet {
	orders := report.Sheet{
		Name: "Orders",
		Headers: []string{
			"Order", "Client", "Venue", "Status", "Order date", "Completed",
			"Total", "Received", "Remaining", "Workers", "Transporters",
		},
		Rows: make([][]any, 0, len(details)),
	}

	crew := report.Sheet{
		Name:    "Crew",
		Headers: []string{"Order", "Role", "First name", "Last name", "Payment"},
	}

	for _, d := range details {
		clientName := ""
		if d.Client != nil {
			clientName = d.Client.Name
		}

		orders.Rows = append(orders.Rows, []any{
			d.OrderName, clientName, d.VenuePlace, d.Status, d.OrderDate,
			d.CompletionDate, d.TotalAmount, d.ReceivedPayment,
			d.RemainingPayment, names(d.Workers), names(d.Transporters),
		})

		for _, a := range d.Workers {
			crew.Rows = append(crew.Rows, []any{d.OrderName, "worker", a.FirstName, a.LastName, a.Payment})
		}
		for _, a := range d.Transporters {
			crew.Rows = append(crew.Rows, []any{d.OrderName, "transporter", a.FirstName, a.LastName, a.Payment})
		}
	}

	return []report.Sheet{orders, crew}
}

func names(crew []Assignment) string {
	out := make([]string, 0, len(crew))
	for _, a := range crew {
		out = append(out, strings.TrimSpace(a.FirstName+" "+a.LastName))
	}
	return strings.Join(out, ", ")
}
