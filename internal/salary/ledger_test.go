// AngelaMos | 2026
// ledger_test.go

package salary_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/studio-ledger/internal/ledger/ledgertest"
	"github.com/carterperez-dev/studio-ledger/internal/salary"
)

func newBookService(t *testing.T) (*ledgertest.Book, *salary.Service) {
	t.Helper()

	book := ledgertest.NewBook()
	book.AddEmployee("emp-1", shop)

	svc := salary.NewService(book, nil, salary.Stores{
		Salaries:  book.SalaryFactory,
		Employees: book.EmployeeStore,
	}).WithClock(func() time.Time { return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) })

	return book, svc
}

func accrue(t *testing.T, svc *salary.Service, amounts ...int64) {
	t.Helper()
	for _, a := range amounts {
		_, err := svc.Create(t.Context(), owner, salary.CreateSalaryRequest{
			EmployeeID:  "emp-1",
			Amount:      decimal.NewFromInt(a),
			SalaryType:  salary.TypeOrderWork,
			Description: "job",
		})
		require.NoError(t, err)
	}
}

func assertEmployeeBalanced(t *testing.T, book *ledgertest.Book, id string) {
	t.Helper()
	e := book.Employees[id]
	assert.True(t, e.RemainingSalary.Equal(e.TotalEarnings.Sub(e.PaidSalary)),
		"remaining %s != total %s - paid %s", e.RemainingSalary, e.TotalEarnings, e.PaidSalary)
}

func TestCreateForeignEmployeeLeavesBookUntouched(t *testing.T) {
	book, svc := newBookService(t)
	book.AddEmployee("emp-9", "Other Shop")

	_, err := svc.Create(t.Context(), owner, salary.CreateSalaryRequest{
		EmployeeID: "emp-9",
		Amount:     decimal.NewFromInt(500),
	})

	require.Error(t, err)
	assert.True(t, book.Employees["emp-9"].TotalEarnings.IsZero())
	assert.Empty(t, book.Salaries)
	assert.Zero(t, book.Commits)
}

func TestPayOldestFirstWithSplit(t *testing.T) {
	book, svc := newBookService(t)
	accrue(t, svc, 100, 200, 50)

	result, err := svc.Pay(t.Context(), owner, salary.PayRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	assert.True(t, result.PaidAmount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, result.PaidSalaries)

	e := book.Employees["emp-1"]
	assert.True(t, e.TotalEarnings.Equal(decimal.NewFromInt(350)))
	assert.True(t, e.PaidSalary.Equal(decimal.NewFromInt(250)))
	assert.True(t, e.RemainingSalary.Equal(decimal.NewFromInt(100)))
	assertEmployeeBalanced(t, book, "emp-1")

	require.Len(t, book.Salaries, 4)
	assert.True(t, book.Salaries[0].IsPaid)
	assert.True(t, book.Salaries[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.False(t, book.Salaries[1].IsPaid)
	assert.True(t, book.Salaries[1].Amount.Equal(decimal.NewFromInt(50)))
	assert.False(t, book.Salaries[2].IsPaid)
	assert.True(t, book.Salaries[2].Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, book.Salaries[3].IsPaid)
	assert.True(t, book.Salaries[3].Amount.Equal(decimal.NewFromInt(150)))

	sum := salary.Summarize(book.Salaries)
	assert.True(t, sum.PaidSalary.Equal(e.PaidSalary))
	assert.True(t, sum.TotalEarnings.Equal(e.TotalEarnings))
}

func TestPayMoreThanOwedAppliesOnlyDebt(t *testing.T) {
	book, svc := newBookService(t)
	accrue(t, svc, 40, 60)

	result, err := svc.Pay(t.Context(), owner, salary.PayRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.True(t, result.PaidAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, book.Employees["emp-1"].RemainingSalary.IsZero())
	assertEmployeeBalanced(t, book, "emp-1")
}

func TestRepeatedPartialPaysConverge(t *testing.T) {
	book, svc := newBookService(t)
	accrue(t, svc, 75, 25, 90)

	for range 19 {
		_, err := svc.Pay(t.Context(), owner, salary.PayRequest{
			EmployeeID: "emp-1",
			Amount:     decimal.NewFromInt(10),
		})
		require.NoError(t, err)
		assertEmployeeBalanced(t, book, "emp-1")
	}

	e := book.Employees["emp-1"]
	assert.True(t, e.PaidSalary.Equal(decimal.NewFromInt(190)))
	assert.True(t, e.RemainingSalary.IsZero())
	for _, row := range book.Salaries {
		assert.True(t, row.IsPaid)
		assert.True(t, row.Amount.IsPositive())
	}
}

func TestPayEntryThenPayAllocatorSkipsIt(t *testing.T) {
	book, svc := newBookService(t)
	accrue(t, svc, 30, 70)

	require.NoError(t, svc.PayEntry(t.Context(), owner, book.Salaries[1].ID))

	result, err := svc.Pay(t.Context(), owner, salary.PayRequest{
		EmployeeID: "emp-1",
		Amount:     decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.PaidSalaries)
	assert.True(t, book.Employees["emp-1"].PaidSalary.Equal(decimal.NewFromInt(100)))
	assertEmployeeBalanced(t, book, "emp-1")
}
