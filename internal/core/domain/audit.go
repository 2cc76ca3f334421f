package domain

import "time"

// AuditAction identifies the kind of catalog write being recorded.
type AuditAction string

const (
	AuditBadgeCreated AuditAction = "badge_created"
	AuditUserCreated  AuditAction = "user_created"
)

// AuditEntry records a single catalog write for the audit trail.
type AuditEntry struct {
	Action    AuditAction
	EntityID  string
	ActorID   string
	Timestamp time.Time
}
