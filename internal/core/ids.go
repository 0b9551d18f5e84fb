// AngelaMos | 2026
// ids.go

package core

import "github.com/google/uuid"

// ValidID reports whether id can be a primary key. Repositories treat
// anything else as not found instead of sending it to postgres.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}
