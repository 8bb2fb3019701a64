package service

import (
	"context"
	"time"
)

const (
	EventPortfolioCreated = "portfolio.created"
	EventPortfolioUpdated = "portfolio.updated"
	EventPortfolioDeleted = "portfolio.deleted"
	EventPortfolioReset   = "portfolio.reset"
)

type PortfolioEvent struct {
	EventType   string    `json:"event_type"`
	PortfolioID string    `json:"portfolio_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishPortfolioEvent(ctx context.Context, evt PortfolioEvent) error
}
