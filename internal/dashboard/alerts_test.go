// AngelaMos | 2026
// alerts_test.go

package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlertsNothingDue(t *testing.T) {
	for _, owner := range []bool{true, false} {
		alerts := BuildAlerts(owner, nil, nil)

		require.Len(t, alerts, 1)
		assert.Equal(t, AlertInfo, alerts[0].Type)
		assert.Equal(t, "All Good!", alerts[0].Title)
		assert.Zero(t, alerts[0].Count)
	}
}

func TestBuildAlertsOnePerCategory(t *testing.T) {
	orders := []DueOrder{
		{OrderName: "Gala", ClientName: "Acme", TotalAmount: decimal.NewFromInt(900), ReceivedPayment: decimal.NewFromInt(400)},
		{OrderName: "Expo"},
	}
	projects := []DueProject{{ProjectName: "Reel", TotalAmount: decimal.NewFromInt(300)}}

	alerts := BuildAlerts(true, orders, projects)

	require.Len(t, alerts, 2)
	assert.Equal(t, AlertUrgent, alerts[0].Type)
	assert.Equal(t, "2 Orders Due Today", alerts[0].Title)
	assert.Equal(t, 2, alerts[0].Count)
	assert.Contains(t, alerts[0].Message, "Remaining: 500.00")
	assert.Contains(t, alerts[0].Message, "Venue: N/A")

	assert.Equal(t, "1 Project Ending Today", alerts[1].Title)
	assert.Equal(t, 1, alerts[1].Count)
}

func TestBuildAlertsForCrew(t *testing.T) {
	projects := []DueProject{{ProjectName: "Reel", CommissionAmount: decimal.NewFromInt(45)}}

	alerts := BuildAlerts(false, nil, projects)

	require.Len(t, alerts, 1)
	assert.Equal(t, "Your 1 Project Ending Today", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Your commission: 45.00")
}

func TestDayOfUsesLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

	day := DayOf(now, kolkata)

	assert.True(t, day.Start.Equal(time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)))
	assert.True(t, day.End.Equal(time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC)))
}
