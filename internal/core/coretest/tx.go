// AngelaMos | 2026
// tx.go

// Package coretest holds test doubles for the core database types.
package coretest

import (
	"context"

	"github.com/carterperez-dev/studio-ledger/internal/core"
)

// Transactor runs fn without a database. Store factories under test
// ignore the DBTX they are handed and return mocks instead.
type Transactor struct {
	Calls      int
	RolledBack int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(tx core.DBTX) error) error {
	t.Calls++
	if err := fn(nil); err != nil {
		t.RolledBack++
		return err
	}
	return nil
}
