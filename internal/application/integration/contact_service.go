// Package integration orchestrates contact traffic between the Linq API and
// AcmeCRM: map inbound, store, map outbound.
package integration

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/linq/acme-integration/internal/domain/contact"
	"github.com/linq/acme-integration/internal/domain/shared"
	"github.com/linq/acme-integration/internal/infrastructure/logger"
	"github.com/linq/acme-integration/internal/infrastructure/telemetry"
)

// IntegrationStatus is reported with every stats response.
const IntegrationStatus = "active"

// ContactService handles contact operations on behalf of authenticated users
type ContactService struct {
	crm     contact.CRMGateway
	metrics *telemetry.ContactMetrics
}

// NewContactService creates a new ContactService
func NewContactService(crm contact.CRMGateway) *ContactService {
	return &ContactService{crm: crm}
}

// SetMetrics attaches business metrics. A nil value disables recording.
func (s *ContactService) SetMetrics(m *telemetry.ContactMetrics) {
	s.metrics = m
}

// CreateContact maps c into the AcmeCRM schema and stores it. Nothing is
// stored when validation fails.
func (s *ContactService) CreateContact(ctx context.Context, user string, c contact.LinqContact) (*CreateResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "contact", "create",
		attribute.String(telemetry.SpanAttrUser, user))
	defer span.End()

	acme, err := contact.ToAcme(c)
	if err != nil {
		s.recordValidation(ctx, err)
		s.metrics.RecordOperation(ctx, "create", err)
		telemetry.RecordError(span, err)
		logger.L(ctx).Info("Contact rejected by validation", zap.Error(err))
		return nil, err
	}

	rec := s.crm.Create(acme)
	span.SetAttributes(attribute.String(telemetry.SpanAttrContactID, rec.ID))
	s.metrics.RecordOperation(ctx, "create", nil)
	logger.L(ctx).Info("Contact created in AcmeCRM", zap.String("contact_id", rec.ID))

	return &CreateResult{
		Success:   true,
		ContactID: rec.ID,
		Message:   fmt.Sprintf("Contact successfully created in AcmeCRM by user %s", user),
	}, nil
}

// ListContacts returns every stored contact in the Linq schema.
func (s *ContactService) ListContacts(ctx context.Context) ([]contact.LinqContact, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "contact", "list")
	defer span.End()

	records := s.crm.List()
	out := make([]contact.LinqContact, 0, len(records))
	for _, rec := range records {
		lc, err := contact.ToLinq(rec.Contact)
		if err != nil {
			err = shared.WrapDomainError("INTERNAL_ERROR",
				fmt.Sprintf("stored contact %s cannot be mapped", rec.ID), err)
			telemetry.RecordError(span, err)
			s.metrics.RecordOperation(ctx, "list", err)
			logger.L(ctx).Error("Stored contact failed mapping", zap.String("contact_id", rec.ID), zap.Error(err))
			return nil, err
		}
		out = append(out, lc)
	}

	span.SetAttributes(attribute.Int(telemetry.SpanAttrCount, len(out)))
	s.metrics.RecordOperation(ctx, "list", nil)
	return out, nil
}

// GetContact returns one stored contact in the Linq schema.
func (s *ContactService) GetContact(ctx context.Context, id string) (*ContactView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "contact", "get",
		attribute.String(telemetry.SpanAttrContactID, id))
	defer span.End()

	rec, ok := s.crm.Get(id)
	if !ok {
		err := notFound(id)
		s.metrics.RecordOperation(ctx, "get", err)
		return nil, err
	}
	lc, err := contact.ToLinq(rec.Contact)
	if err != nil {
		err = shared.WrapDomainError("INTERNAL_ERROR",
			fmt.Sprintf("stored contact %s cannot be mapped", rec.ID), err)
		telemetry.RecordError(span, err)
		s.metrics.RecordOperation(ctx, "get", err)
		return nil, err
	}

	s.metrics.RecordOperation(ctx, "get", nil)
	return &ContactView{
		ID:          rec.ID,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		LinqContact: lc,
	}, nil
}

// UpdateStatus changes the CRM status of a stored contact.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "contact", "update_status",
		attribute.String(telemetry.SpanAttrContactID, id),
		attribute.String(telemetry.SpanAttrStatus, status))
	defer span.End()

	if status == "" {
		err := shared.NewDomainError("INVALID_INPUT", "status cannot be empty")
		s.metrics.RecordOperation(ctx, "update_status", err)
		return err
	}
	if !s.crm.UpdateStatus(id, status) {
		err := notFound(id)
		s.metrics.RecordOperation(ctx, "update_status", err)
		return err
	}

	s.metrics.RecordOperation(ctx, "update_status", nil)
	logger.L(ctx).Info("Contact status updated",
		zap.String("contact_id", id),
		zap.String("status", status),
	)
	return nil
}

// DeleteContact removes a stored contact.
func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "contact", "delete",
		attribute.String(telemetry.SpanAttrContactID, id))
	defer span.End()

	if !s.crm.Delete(id) {
		err := notFound(id)
		s.metrics.RecordOperation(ctx, "delete", err)
		return err
	}

	s.metrics.RecordOperation(ctx, "delete", nil)
	logger.L(ctx).Info("Contact deleted", zap.String("contact_id", id))
	return nil
}

// Stats reports AcmeCRM counts for user.
func (s *ContactService) Stats(ctx context.Context, user string) *StatsResult {
	_, span := telemetry.StartServiceSpan(ctx, "contact", "stats")
	defer span.End()

	return &StatsResult{
		User:              user,
		AcmeCRMStats:      s.crm.Stats(),
		IntegrationStatus: IntegrationStatus,
	}
}

// MappingSchema returns the field mapping descriptor.
func (s *ContactService) MappingSchema() contact.MappingSchema {
	return contact.Schema()
}

// StoreSnapshot adapts the gateway's stats for the stored-contacts gauge.
func StoreSnapshot(crm contact.CRMGateway) telemetry.StoreSnapshot {
	return func() (int64, int64) {
		st := crm.Stats()
		return int64(st.Active), int64(st.Inactive)
	}
}

func (s *ContactService) recordValidation(ctx context.Context, err error) {
	var verr *contact.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	s.metrics.RecordValidationFailure(ctx, fields...)
}

func notFound(id string) error {
	return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Contact %s not found", id))
}
