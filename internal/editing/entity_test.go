// AngelaMos | 2026
// entity_test.go

package editing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		percent string
		want    string
	}{
		{name: "whole", value: "1000", percent: "10", want: "100"},
		{name: "rounds half up", value: "125", percent: "10", want: "13"},
		{name: "rounds down", value: "124", percent: "10", want: "12"},
		{name: "fractional percent", value: "999", percent: "12.5", want: "125"},
		{name: "zero", value: "0", percent: "40", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Commission(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.percent))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestClientDeltaCountsOneProject(t *testing.T) {
	p := Project{TotalAmount: decimal.NewFromInt(500), ReceivedPayment: decimal.NewFromInt(50), ShopName: "Neon Nights"}

	d := p.ClientDelta()

	assert.Equal(t, 1, d.Projects)
	assert.Equal(t, "Neon Nights", d.ShopName)
	assert.Equal(t, "Neon Nights", d.Negate().ShopName)
	assert.Zero(t, d.Orders)
	assert.True(t, d.Due.Equal(decimal.NewFromInt(500)))
	assert.True(t, d.Received.Equal(decimal.NewFromInt(50)))
}
