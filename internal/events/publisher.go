package events

import (
	"context"
	"time"
)

// Event types emitted by the portal.
const (
	TypeUserRegistered    = "portal.user_registered"
	TypeMarkRecorded      = "portal.mark_recorded"
	TypeEnrollmentCreated = "portal.enrollment_created"
)

// Topic carries all portal domain events.
const Topic = "student-portal.events"

// Event is the envelope published for every domain event.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// EventPublisher publishes domain events. Publishing is best-effort:
// failures are logged by callers and never surfaced to the user.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopEventPublisher discards events. Used when no broker is configured.
type NoopEventPublisher struct{}

func NewNoopEventPublisher() *NoopEventPublisher { return &NoopEventPublisher{} }

func (p *NoopEventPublisher) Publish(ctx context.Context, event Event) error { return nil }
func (p *NoopEventPublisher) Close() error                                   { return nil }
