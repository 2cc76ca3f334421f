package ports

import (
	"context"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

// AuditRepository persists catalog write events to the audit trail.
type AuditRepository interface {
	InsertEntry(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous recording. Implemented
// by the queue dispatcher; Record never blocks the request path beyond the
// worker channel buffer.
type AuditSink interface {
	Record(entry domain.AuditEntry)
}
