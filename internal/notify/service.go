package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/timberridge/outdoor-living-backend/internal/leads"
	"github.com/timberridge/outdoor-living-backend/internal/observability/metrics"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

// Service sends the operator a heads-up email for every captured lead.
// It is strictly best-effort: every failure is caught, logged and swallowed,
// and an unconfigured service is a silent no-op.
type Service struct {
	email   EmailSender
	inbox   string
	metrics *metrics.LeadMetrics
	logger  *logging.Logger
}

// NewService creates a notification service. email may be nil (disabled).
func NewService(email EmailSender, inbox string, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:   email,
		inbox:   inbox,
		metrics: m,
		logger:  logger,
	}
}

// LeadReceived emails the operator inbox about a newly stored lead.
// isContactForm selects the richer contact-form message over the minimal
// lead-magnet one. Never returns an error to the caller.
func (s *Service) LeadReceived(ctx context.Context, lead *leads.Lead, isContactForm bool) {
	if s.email == nil || s.inbox == "" {
		s.logger.Debug("notify: email not configured, skipping lead notification", "lead_id", lead.ID)
		return
	}

	var msg EmailMessage
	if isContactForm {
		msg = s.contactFormMessage(lead)
	} else {
		msg = s.leadMagnetMessage(lead)
	}

	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("notify: failed to send lead notification", "error", err, "lead_id", lead.ID)
		s.metrics.ObserveNotification("failed")
		return
	}

	s.logger.Info("notify: lead notification sent", "lead_id", lead.ID, "to", s.inbox)
	s.metrics.ObserveNotification("sent")
}

func (s *Service) contactFormMessage(lead *leads.Lead) EmailMessage {
	name := lead.Name()
	var b strings.Builder
	fmt.Fprintf(&b, "New inquiry from the contact page.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	appendField(&b, "Phone", lead.Phone)
	appendField(&b, "Location", lead.Location)
	appendField(&b, "Project Type", lead.ProjectType)
	appendField(&b, "Customer Type", lead.CustomerType)
	appendField(&b, "Message", lead.Message)
	fmt.Fprintf(&b, "\nReceived: %s\n", lead.CreatedAt.UTC().Format(time.RFC1123))

	return EmailMessage{
		To:      s.inbox,
		Subject: fmt.Sprintf("New Project Inquiry - %s", name),
		Body:    b.String(),
	}
}

func (s *Service) leadMagnetMessage(lead *leads.Lead) EmailMessage {
	name := lead.Name()
	var b strings.Builder
	fmt.Fprintf(&b, "Someone grabbed the outdoor living guide.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Source: %s\n", lead.Source)
	fmt.Fprintf(&b, "\nReceived: %s\n", lead.CreatedAt.UTC().Format(time.RFC1123))

	return EmailMessage{
		To:      s.inbox,
		Subject: fmt.Sprintf("New Guide Download - %s", name),
		Body:    b.String(),
	}
}

func appendField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

var _ leads.Notifier = (*Service)(nil)
