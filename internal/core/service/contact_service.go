package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// RateLimitPolicy bounds contact submissions per client IP.
type RateLimitPolicy struct {
	Limit  int
	Window time.Duration
}

func (p RateLimitPolicy) enabled() bool {
	return p.Limit > 0 && p.Window > 0
}

type ContactService struct {
	repo     ports.ContactRepository
	limiter  ports.RateLimiter
	recorder ports.EventRecorder
	notifier ports.ContactNotifier
	policy   RateLimitPolicy
	logger   zerolog.Logger
}

// NewContactService wires the contact use cases. limiter, recorder and
// notifier are optional collaborators and may be nil.
func NewContactService(
	repo ports.ContactRepository,
	limiter ports.RateLimiter,
	recorder ports.EventRecorder,
	notifier ports.ContactNotifier,
	policy RateLimitPolicy,
	logger zerolog.Logger,
) *ContactService {
	return &ContactService{
		repo:     repo,
		limiter:  limiter,
		recorder: recorder,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
	}
}

// Submit stores a contact message after the per-IP rate limit check.
func (s *ContactService) Submit(ctx context.Context, in ports.SubmitContactInput) (*domain.ContactMessage, error) {
	// 1. Rate limit. A limiter outage must not take the contact form down.
	if s.limiter != nil && s.policy.enabled() && in.Meta.IPAddress != "" {
		allowed, err := s.limiter.Allow(ctx, "contact:"+in.Meta.IPAddress, s.policy.Limit, s.policy.Window)
		if err != nil {
			s.logger.Warn().Err(err).Str("ip", in.Meta.IPAddress).Msg("rate limit check failed, accepting message")
		} else if !allowed {
			s.logger.Info().Str("ip", in.Meta.IPAddress).Msg("contact submission rate limited")
			return nil, domain.ErrRateLimited
		}
	}

	// 2. Persist.
	msg := &domain.ContactMessage{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IsRead:    false,
		IPAddress: in.Meta.IPAddress,
		UserAgent: in.Meta.UserAgent,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact message")
		return nil, err
	}

	// 3. Side effects below are best-effort.
	if s.recorder != nil {
		s.recorder.Enqueue(ports.RecordEventInput{
			EventType: domain.EventContact,
			Page:      "contact",
			Meta:      in.Meta,
		})
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyContact(ctx, msg); err != nil {
			s.logger.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to publish contact notification")
		}
	}

	s.logger.Info().Str("message_id", msg.ID).Str("ip", msg.IPAddress).Msg("contact message received")
	return msg, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}
