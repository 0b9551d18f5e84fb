// AngelaMos | 2026
// entity.go

package user

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               string          `db:"id"`
	FirstName        string          `db:"first_name"`
	LastName         string          `db:"last_name"`
	Email            string          `db:"email"`
	PasswordHash     *string         `db:"password_hash"`
	ShopName         string          `db:"shop_name"`
	Role             string          `db:"role"`
	Phone            string          `db:"phone"`
	IsFromWorker     bool            `db:"is_from_worker"`
	OriginalWorkerID *string         `db:"original_worker_id"`
	IsFromEditor     bool            `db:"is_from_editor"`
	OriginalEditorID *string         `db:"original_editor_id"`
	ProfileComplete  bool            `db:"profile_complete"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	PaidSalary       decimal.Decimal `db:"paid_salary"`
	RemainingSalary  decimal.Decimal `db:"remaining_salary"`
	AccuracyRating   decimal.Decimal `db:"accuracy_rating"`
	TokenVersion     int             `db:"token_version"`
	LastLogin        *time.Time      `db:"last_login"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

const (
	RoleOwner             = "owner"
	RoleWorker            = "worker"
	RoleEditor            = "editor"
	RoleTransporter       = "transporter"
	RoleWorkerEditor      = "worker_editor"
	RoleTransporterWorker = "transporter_worker"
)

var (
	WorkerRoles      = []string{RoleWorker, RoleWorkerEditor, RoleTransporterWorker}
	EditorRoles      = []string{RoleEditor, RoleWorkerEditor}
	TransporterRoles = []string{RoleTransporter, RoleTransporterWorker}
	StaffRoles       = []string{RoleWorker, RoleEditor, RoleWorkerEditor}
)

func ValidRole(role string) bool {
	return role == RoleOwner ||
		slices.Contains(WorkerRoles, role) ||
		slices.Contains(EditorRoles, role) ||
		slices.Contains(TransporterRoles, role)
}

// WorkStats aggregates a user's assignments and salary rows.
type WorkStats struct {
	TotalOrders       int             `db:"total_orders"`
	CompletedOrders   int             `db:"completed_orders"`
	TotalProjects     int             `db:"total_projects"`
	CompletedProjects int             `db:"completed_projects"`
	TotalEarnings     decimal.Decimal `db:"total_earnings"`
	PaidSalary        decimal.Decimal `db:"paid_salary"`
}
