// Package notify delivers spending alerts to the outside world.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Alert is the payload handed to notifiers when a category crosses a tier.
type Alert struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Type           string          `json:"type"`
	Month          string          `json:"month"`
	Message        string          `json:"message"`
	Spent          decimal.Decimal `json:"spent"`
	Limit          decimal.Decimal `json:"limit"`
	PercentageUsed decimal.Decimal `json:"percentage_used"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Text renders the alert as a short human-readable message.
func (a Alert) Text() string {
	return fmt.Sprintf("[%s] %s: %s%% of %s used (%s spent in %s)\n%s",
		a.Type, a.CategoryName, a.PercentageUsed.StringFixed(0), a.Limit.StringFixed(2),
		a.Spent.StringFixed(2), a.Month, a.Message)
}

// Notifier delivers a single alert.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// LogNotifier writes alerts to the structured log.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier creates a notifier that logs through the given logger.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, alert Alert) error {
	n.log.Infow("spending alert",
		"category", alert.CategoryName,
		"type", alert.Type,
		"month", alert.Month,
		"percentage_used", alert.PercentageUsed.StringFixed(2),
	)
	return nil
}

// Multi fans an alert out to every notifier and joins their errors.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, alert Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
