package queue

import (
	"context"
	"fmt"
	"time"
)

// ExportsAuditQueue collects every report event for downstream consumers.
const ExportsAuditQueue = "backoffice.report_events"

type ReportExportedEvent struct {
	Type       string    `json:"type"`
	ExportID   string    `json:"exportId"`
	OperatorID string    `json:"operatorId"`
	OutletID   string    `json:"outletId"`
	Category   string    `json:"category"`
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	ObjectURL  *string   `json:"objectUrl"`
	RowCount   int       `json:"rowCount"`
	ExportedAt time.Time `json:"exportedAt"`
}

type jsonPublisher interface {
	PublishJSON(ctx context.Context, exchange, routingKey string, payload any) error
}

// EventPublisher announces report activity on a topic exchange.
type EventPublisher struct {
	pub        jsonPublisher
	exchange   string
	routingKey string
}

func NewEventPublisher(pub jsonPublisher, exchange, routingKey string) *EventPublisher {
	if routingKey == "" {
		routingKey = "report.exported"
	}
	return &EventPublisher{pub: pub, exchange: exchange, routingKey: routingKey}
}

func (p *EventPublisher) PublishReportExported(ctx context.Context, event ReportExportedEvent) error {
	event.Type = p.routingKey
	if event.ExportedAt.IsZero() {
		event.ExportedAt = time.Now().UTC()
	}
	if err := p.pub.PublishJSON(ctx, p.exchange, p.routingKey, event); err != nil {
		return fmt.Errorf("publish %s: %w", p.routingKey, err)
	}
	return nil
}

// EnsureReportEventsTopology declares the events exchange and binds the
// audit queue to every report.* routing key.
func EnsureReportEventsTopology(qc *Client, exchange string) error {
	if qc == nil {
		return nil
	}
	if err := qc.EnsureExchange(exchange); err != nil {
		return err
	}
	if _, err := qc.EnsureQueue(ExportsAuditQueue); err != nil {
		return err
	}
	// '#' also matches multi-segment keys.
	return qc.BindQueue(ExportsAuditQueue, exchange, "report.#")
}
