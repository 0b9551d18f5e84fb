// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"time"

	"github.com/carterperez-dev/studio-ledger/internal/access"
)

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

// NewService reports "today" in loc.
func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Alerts(ctx context.Context, actor access.Actor) ([]Alert, error) {
	filter := access.ListScope(actor)
	if filter.Scope == access.ScopeNone {
		return BuildAlerts(false, nil, nil), nil
	}

	day := DayOf(s.now(), s.loc)

	orders, err := s.repo.OrdersDue(ctx, filter, day)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.ProjectsDue(ctx, filter, day)
	if err != nil {
		return nil, err
	}

	return BuildAlerts(filter.Scope == access.ScopeShop, orders, projects), nil
}

func (s *Service) Stats(ctx context.Context, actor access.Actor) (Stats, error) {
	stats := emptyStats(actor.Role)

	filter := access.ListScope(actor)
	switch filter.Scope {
	case access.ScopeShop:
		t, err := s.repo.ShopTotals(ctx, filter.ShopName)
		if err != nil {
			return stats, err
		}
		stats.RemainingOrders = t.RemainingOrders
		stats.DoneOrders = t.DoneOrders
		stats.TotalPayment = t.TotalPayment
		stats.ReceivedPayment = t.ReceivedPayment
		stats.ActiveProjects = t.ActiveProjects
		stats.CompletedProjects = t.CompletedProjects
		stats.RemainingClientPayments = t.RemainingClientPayments
		stats.WorkerPayments = t.WorkerPayments

	case access.ScopeParticipant:
		t, err := s.repo.MemberTotals(ctx, filter.ShopName, filter.UserID)
		if err != nil {
			return stats, err
		}
		stats.ActiveOrders = t.ActiveOrders
		stats.CompletedOrders = t.CompletedOrders
		stats.ActiveProjects = t.ActiveProjects
		stats.CompletedProjects = t.CompletedProjects
		stats.TotalEarnings = t.TotalEarnings
		stats.PaidSalary = t.PaidSalary
		stats.RemainingSalary = t.TotalEarnings.Sub(t.PaidSalary)
	}

	return stats, nil
}
