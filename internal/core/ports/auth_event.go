package ports

import (
	"context"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// AuthEventRecorder accepts security events for asynchronous recording.
// Implementations must never block the calling request.
type AuthEventRecorder interface {
	Record(event domain.AuthEvent)
}

// AuthEventRepository persists recorded auth events.
type AuthEventRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	ListRecent(ctx context.Context, limit int64) ([]domain.AuthEvent, error)
}

// LoginThrottle counts failed login attempts per email+address and reports
// when further attempts should be rejected for the rest of the window.
type LoginThrottle interface {
	// Blocked reports whether this email+address pair has exhausted its
	// attempt budget.
	Blocked(ctx context.Context, email, addr string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, email, addr string) error
	// Clear resets the counter after a successful login.
	Clear(ctx context.Context, email, addr string) error
}
