package service

import (
	"context"
	"time"
)

// Audit actions recorded for entity lifecycle changes.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// AuditEvent records one entity lifecycle change for the audit trail.
type AuditEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing audit events to a
// message queue. Publishing is best-effort; failures never fail the mutation.
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async processing.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
