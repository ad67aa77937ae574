// internal/core/ports/tx.go
package ports

import "context"

// Transactor is the atomic-unit-of-work boundary. WithinTx begins a
// transaction scope, carries its handle in the derived context passed to fn,
// commits on normal return and rolls back on error or panic. A nested
// WithinTx call joins the already-open scope instead of beginning a second
// one. Repository calls made with the derived context participate in the
// scope; readers outside it never observe uncommitted writes.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
