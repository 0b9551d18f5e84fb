// AngelaMos | 2026
// matchers.go

package coretest

import (
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type decimalMatcher struct {
	want decimal.Decimal
}

// Dec matches a decimal by value, so 2.50 and 2.5 are the same amount.
func Dec(v any) gomock.Matcher {
	switch t := v.(type) {
	case decimal.Decimal:
		return decimalMatcher{want: t}
	case int:
		return decimalMatcher{want: decimal.NewFromInt(int64(t))}
	case string:
		return decimalMatcher{want: decimal.RequireFromString(t)}
	default:
		panic("coretest.Dec: unsupported type")
	}
}

func (m decimalMatcher) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}
