// AngelaMos | 2026
// alerts.go

package dashboard

import (
	"fmt"
	"strings"
)

const (
	iconWarning = "fas fa-exclamation-triangle"
	iconBox     = "fas fa-box"
	iconVideo   = "fas fa-video"
	iconCheck   = "fas fa-check-circle"
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func orEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// BuildAlerts turns today's due work into at most one urgent alert per
// category, or a single info alert when nothing is due.
func BuildAlerts(owner bool, orders []DueOrder, projects []DueProject) []Alert {
	alerts := make([]Alert, 0, 2)

	if len(orders) > 0 {
		alerts = append(alerts, orderAlert(owner, orders))
	}
	if len(projects) > 0 {
		alerts = append(alerts, projectAlert(owner, projects))
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			Type:    AlertInfo,
			Title:   "All Good!",
			Message: "No urgent deadlines today. Keep up the great work!",
			Icon:    iconCheck,
		})
	}

	return alerts
}

func orderAlert(owner bool, orders []DueOrder) Alert {
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		if owner {
			lines = append(lines, fmt.Sprintf(
				"Order: %s\nClient: %s | Venue: %s\nRemaining: %s\nDue today",
				o.OrderName, orEmpty(o.ClientName, "N/A"), orEmpty(o.VenuePlace, "N/A"),
				o.Remaining().StringFixed(2),
			))
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"Order: %s\nVenue: %s\nDue today, your work must be completed today",
			o.OrderName, orEmpty(o.VenuePlace, "Not specified"),
		))
	}

	title := plural(len(orders), "Order") + " Due Today"
	icon := iconWarning
	if !owner {
		title = "Your " + title
		icon = iconBox
	}

	return Alert{
		Type:    AlertUrgent,
		Title:   title,
		Message: strings.Join(lines, "\n\n"),
		Icon:    icon,
		Count:   len(orders),
	}
}

func projectAlert(owner bool, projects []DueProject) Alert {
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		if owner {
			lines = append(lines, fmt.Sprintf(
				"Project: %s\nValue: %s\nDeadline today",
				p.ProjectName, p.TotalAmount.StringFixed(2),
			))
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"Project: %s\nYour commission: %s\nDeadline today, project must be completed today",
			p.ProjectName, p.CommissionAmount.StringFixed(2),
		))
	}

	title := plural(len(projects), "Project") + " Ending Today"
	if !owner {
		title = "Your " + title
	}

	return Alert{
		Type:    AlertUrgent,
		Title:   title,
		Message: strings.Join(lines, "\n\n"),
		Icon:    iconVideo,
		Count:   len(projects),
	}
}

// SystemErrorAlert is served with a 500 when alerts cannot be loaded.
func SystemErrorAlert() Alert {
	return Alert{
		Type:    AlertUrgent,
		Title:   "System Error",
		Message: "Unable to load alerts. Please refresh the page.",
		Icon:    iconWarning,
	}
}
