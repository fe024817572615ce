package domain

import "time"

// Auth event kinds.
const (
	AuthEventLoginSuccess   = "login_success"
	AuthEventLoginFailure   = "login_failure"
	AuthEventLoginThrottled = "login_throttled"
	AuthEventForbidden      = "forbidden"
)

// AuthEvent is a security-relevant decision recorded for diagnostics.
// Recording is best-effort and asynchronous; it never influences the
// outcome of the request that produced it.
type AuthEvent struct {
	Kind      string    `json:"kind"`
	Email     string    `json:"email,omitempty"`     // login attempts only
	AccountID string    `json:"accountId,omitempty"` // empty when no identity was resolved
	Resource  string    `json:"resource,omitempty"`  // privilege-gate decisions only
	RemoteIP  string    `json:"remoteIp,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
