// AngelaMos | 2026
// allocator_test.go

package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(amounts ...int64) []Salary {
	out := make([]Salary, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, Salary{
			ID:     string(rune('a' + i)),
			Seq:    int64(i + 1),
			Amount: decimal.NewFromInt(a),
		})
	}
	return out
}

func TestAllocateSplitsFirstRowThatDoesNotFit(t *testing.T) {
	alloc := Allocate(rows(100, 200, 50), decimal.NewFromInt(250))

	assert.Equal(t, []string{"a"}, alloc.PaidIDs())
	require.NotNil(t, alloc.Split)
	assert.Equal(t, "b", alloc.Split.Source.ID)
	assert.True(t, alloc.Split.Covered.Equal(decimal.NewFromInt(150)))
	assert.True(t, alloc.Applied.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, alloc.Count())
}

func TestAllocateExactFit(t *testing.T) {
	alloc := Allocate(rows(100, 200, 50), decimal.NewFromInt(300))

	assert.Equal(t, []string{"a", "b"}, alloc.PaidIDs())
	assert.Nil(t, alloc.Split)
	assert.True(t, alloc.Applied.Equal(decimal.NewFromInt(300)))
}

func TestAllocateNeverOverpays(t *testing.T) {
	alloc := Allocate(rows(100, 200, 50), decimal.NewFromInt(1000))

	assert.Equal(t, []string{"a", "b", "c"}, alloc.PaidIDs())
	assert.Nil(t, alloc.Split)
	assert.True(t, alloc.Applied.Equal(decimal.NewFromInt(350)))
}

func TestAllocateNoDebts(t *testing.T) {
	alloc := Allocate(nil, decimal.NewFromInt(50))

	assert.Empty(t, alloc.Paid)
	assert.Nil(t, alloc.Split)
	assert.True(t, alloc.Applied.IsZero())
	assert.Zero(t, alloc.Count())
}

func TestAllocateFractionalAmounts(t *testing.T) {
	unpaid := []Salary{
		{ID: "x", Amount: decimal.RequireFromString("10.10")},
		{ID: "y", Amount: decimal.RequireFromString("20.20")},
	}

	alloc := Allocate(unpaid, decimal.RequireFromString("15.15"))

	assert.Equal(t, []string{"x"}, alloc.PaidIDs())
	require.NotNil(t, alloc.Split)
	assert.True(t, alloc.Split.Covered.Equal(decimal.RequireFromString("5.05")))
	assert.True(t, alloc.Applied.Equal(decimal.RequireFromString("15.15")))
}

func TestSummarize(t *testing.T) {
	in := rows(100, 200, 50)
	in[1].IsPaid = true

	sum := Summarize(in)

	assert.True(t, sum.TotalEarnings.Equal(decimal.NewFromInt(350)))
	assert.True(t, sum.PaidSalary.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.RemainingSalary.Equal(decimal.NewFromInt(150)))
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)

	assert.NotNil(t, sum.Salaries)
	assert.True(t, sum.TotalEarnings.IsZero())
}
