// AngelaMos | 2026
// allocator.go

package salary

import (
	"github.com/shopspring/decimal"
)

// Split covers part of Source. The covered part becomes a new paid row
// and Source keeps the rest, still unpaid.
type Split struct {
	Source  Salary
	Covered decimal.Decimal
}

type Allocation struct {
	Paid    []Salary
	Split   *Split
	Applied decimal.Decimal
}

// Count is the number of rows the payout touched, the split included.
func (a Allocation) Count() int {
	n := len(a.Paid)
	if a.Split != nil {
		n++
	}
	return n
}

func (a Allocation) PaidIDs() []string {
	ids := make([]string, 0, len(a.Paid))
	for _, s := range a.Paid {
		ids = append(ids, s.ID)
	}
	return ids
}

// Allocate spends amount on unpaid rows in the order given, which must
// be oldest first. Whole rows are paid while they fit; the first row that
// does not fit is split and allocation stops. Applied never exceeds
// amount and may fall short of it when the debts run out.
func Allocate(unpaid []Salary, amount decimal.Decimal) Allocation {
	alloc := Allocation{Applied: decimal.Zero}
	remaining := amount

	for _, s := range unpaid {
		if !remaining.IsPositive() {
			break
		}

		if s.Amount.LessThanOrEqual(remaining) {
			alloc.Paid = append(alloc.Paid, s)
			alloc.Applied = alloc.Applied.Add(s.Amount)
			remaining = remaining.Sub(s.Amount)
			continue
		}

		alloc.Split = &Split{Source: s, Covered: remaining}
		alloc.Applied = alloc.Applied.Add(remaining)
		break
	}

	return alloc
}
