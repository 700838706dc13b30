package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// StoreSnapshot reports how many contacts are stored, split by status.
type StoreSnapshot func() (active, inactive int64)

// ContactMetrics holds the integration's business instruments.
type ContactMetrics struct {
	operations      *Counter
	authFailures    *Counter
	validationFails *Counter
	stored          metric.Int64ObservableGauge
	registration    metric.Registration
}

// NewContactMetrics creates the contact instruments. When snapshot is non-nil
// it is polled on every collection to report the stored contact gauge.
func NewContactMetrics(meter metric.Meter, snapshot StoreSnapshot) (*ContactMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	ops, err := NewCounter(meter, "contact_operations_total",
		"Contact operations handled by the integration", "{operation}")
	if err != nil {
		return nil, err
	}
	authFailures, err := NewCounter(meter, "auth_failures_total",
		"Bearer tokens that could not be resolved", "{failure}")
	if err != nil {
		return nil, err
	}
	validationFails, err := NewCounter(meter, "contact_validation_failures_total",
		"Contacts rejected by field validation", "{contact}")
	if err != nil {
		return nil, err
	}

	cm := &ContactMetrics{
		operations:      ops,
		authFailures:    authFailures,
		validationFails: validationFails,
	}

	if snapshot != nil {
		cm.stored, err = meter.Int64ObservableGauge("contacts_stored",
			metric.WithDescription("Contacts currently held by AcmeCRM"),
			metric.WithUnit("{contact}"),
		)
		if err != nil {
			return nil, err
		}
		cm.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
			active, inactive := snapshot()
			o.ObserveInt64(cm.stored, active, metric.WithAttributes(AttrContactStatus.String("active")))
			o.ObserveInt64(cm.stored, inactive, metric.WithAttributes(AttrContactStatus.String("inactive")))
			return nil
		}, cm.stored)
		if err != nil {
			return nil, err
		}
	}

	return cm, nil
}

// RecordOperation counts a contact operation and whether it succeeded.
func (cm *ContactMetrics) RecordOperation(ctx context.Context, operation string, err error) {
	if cm == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	cm.operations.Inc(ctx, AttrOperation.String(operation), AttrOutcome.String(outcome))
}

// RecordAuthFailure counts a rejected bearer token.
func (cm *ContactMetrics) RecordAuthFailure(ctx context.Context, reason string) {
	if cm == nil {
		return
	}
	cm.authFailures.Inc(ctx, AttrReason.String(reason))
}

// RecordValidationFailure counts a contact rejected by validation.
func (cm *ContactMetrics) RecordValidationFailure(ctx context.Context, fields ...string) {
	if cm == nil {
		return
	}
	cm.validationFails.Inc(ctx, attribute.Int("fields", len(fields)))
}

// Close unregisters the stored-contacts callback.
func (cm *ContactMetrics) Close() error {
	if cm == nil || cm.registration == nil {
		return nil
	}
	return cm.registration.Unregister()
}
