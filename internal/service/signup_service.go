//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"waitlist/backend/internal/metrics"
	"waitlist/backend/internal/model"
	"waitlist/backend/internal/repository"
	"waitlist/backend/pkg/logger"
	"waitlist/backend/pkg/sanitizer"
)

// SignupInput is one submission before validation and normalization.
type SignupInput struct {
	Email          string
	Tab            string
	Name           string
	Source         string
	Tags           []string
	Metadata       map[string]string
	TurnstileToken string
	RemoteIP       string
}

// SignupService runs the submission pipeline:
// validate -> bot gate -> duplicate check -> persist -> detached notify.
type SignupService interface {
	Submit(ctx context.Context, in SignupInput) (model.SignupRecord, error)
	SubmitBulk(ctx context.Context, items []SignupInput) (model.BulkResult, error)
	Stats(ctx context.Context) (model.SignupStats, error)
	// Drain blocks until all detached notifications have finished.
	// Used by tests and shutdown, never by request handlers.
	Drain()
}

// Options are the pipeline knobs taken from configuration at startup.
type Options struct {
	DefaultTab       string
	DedupeAcrossTabs bool
	RequireBotCheck  bool
	NotifyTimeout    time.Duration
}

type signupService struct {
	store    repository.SignupStore
	verifier BotVerifier
	notifier Notifier
	metrics  metrics.Recorder
	opts     Options

	pending sync.WaitGroup
}

func NewSignupService(store repository.SignupStore, verifier BotVerifier, notifier Notifier, rec metrics.Recorder, opts Options) SignupService {
	if opts.DefaultTab == "" {
		opts.DefaultTab = "Signups"
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = 10 * time.Second
	}
	return &signupService{
		store:    store,
		verifier: verifier,
		notifier: notifier,
		metrics:  rec,
		opts:     opts,
	}
}

const maxBulkItems = 100

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	tabPattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]{0,99}$`)
)

func (s *signupService) Submit(ctx context.Context, in SignupInput) (model.SignupRecord, error) {
	start := time.Now()
	rec, err := s.submit(ctx, in)
	s.metrics.ObserveSignup(err == nil, time.Since(start))
	return rec, err
}

func (s *signupService) submit(ctx context.Context, in SignupInput) (model.SignupRecord, error) {
	rec, err := s.buildRecord(in)
	if err != nil {
		return model.SignupRecord{}, err
	}

	if s.opts.RequireBotCheck {
		if err := s.verifyToken(ctx, in); err != nil {
			return model.SignupRecord{}, err
		}
	}

	// Duplicate check strictly precedes the append. Two concurrent
	// requests for the same new email can still both pass this check and
	// both persist: the store is append-only with no unique index, so the
	// race stays open rather than forcing a transaction the backend
	// cannot provide.
	found, err := s.exists(ctx, rec)
	if err != nil {
		logger.Error("duplicate check failed", "email", rec.Email, "error", err)
		s.notifyErrorDetached("duplicate-check", err)
		return model.SignupRecord{}, ErrStorage
	}
	if found {
		return model.SignupRecord{}, ErrDuplicate
	}

	if err := s.append(ctx, rec); err != nil {
		logger.Error("persist failed", "email", rec.Email, "error", err)
		s.notifyErrorDetached("persist", err)
		return model.SignupRecord{}, ErrStorage
	}

	// Detached: the response is already determined by successful
	// persistence, notification failure must not change it.
	s.notifyDetached("signup", func(ctx context.Context) error {
		return s.notifier.NotifySignup(ctx, rec)
	})

	return rec, nil
}

func (s *signupService) SubmitBulk(ctx context.Context, items []SignupInput) (model.BulkResult, error) {
	if len(items) == 0 || len(items) > maxBulkItems {
		return model.BulkResult{}, &ValidationError{Details: []string{
			fmt.Sprintf("signups must contain between 1 and %d items", maxBulkItems),
		}}
	}

	// Bulk bypasses the bot gate by design and never sends signup
	// notifications; it runs validate, dedup and persist per item.
	var result model.BulkResult
	for i, item := range items {
		rec, err := s.buildRecord(item)
		if err != nil {
			result.Failed++
			var verr *ValidationError
			if errors.As(err, &verr) {
				result.Errors = append(result.Errors, fmt.Sprintf("item %d: %s", i+1, strings.Join(verr.Details, "; ")))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("item %d: invalid submission", i+1))
			}
			continue
		}

		found, err := s.exists(ctx, rec)
		if err != nil {
			logger.Error("bulk duplicate check failed", "email", rec.Email, "error", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: storage failure", i+1))
			continue
		}
		if found {
			result.Duplicates++
			continue
		}

		if err := s.append(ctx, rec); err != nil {
			logger.Error("bulk persist failed", "email", rec.Email, "error", err)
			s.notifyErrorDetached("persist", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: storage failure", i+1))
			continue
		}
		result.Success++
	}
	return result, nil
}

func (s *signupService) Stats(ctx context.Context) (model.SignupStats, error) {
	start := time.Now()
	stats, err := s.store.Stats(ctx)
	s.metrics.ObserveStorage("stats", err == nil, time.Since(start))
	if err != nil {
		return model.SignupStats{}, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

func (s *signupService) Drain() {
	s.pending.Wait()
}

// buildRecord validates and normalizes one submission. All violations are
// collected so the client sees every problem at once.
func (s *signupService) buildRecord(in SignupInput) (model.SignupRecord, error) {
	var details []string

	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case email == "":
		details = append(details, "email is required")
	case len(email) > 254:
		details = append(details, "email must be at most 254 characters")
	case !emailPattern.MatchString(email):
		details = append(details, "email must be a valid email address")
	}

	tab := strings.TrimSpace(in.Tab)
	if tab == "" {
		tab = s.opts.DefaultTab
	} else if !tabPattern.MatchString(tab) {
		details = append(details, "sheetTab may only contain letters, digits, spaces, hyphens and underscores")
	}

	name := sanitizer.StripMarkup(in.Name)
	if len(name) > 200 {
		details = append(details, "name must be at most 200 characters")
	}
	source := sanitizer.StripMarkup(in.Source)
	if len(source) > 100 {
		details = append(details, "source must be at most 100 characters")
	}

	var tags []string
	for _, tag := range in.Tags {
		if trimmed := sanitizer.StripMarkup(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	if len(tags) > 20 {
		details = append(details, "tags must contain at most 20 entries")
	}

	metadata := sanitizer.StripMarkupMap(in.Metadata)
	if len(metadata) > 25 {
		details = append(details, "metadata must contain at most 25 keys")
	}

	if len(details) > 0 {
		return model.SignupRecord{}, &ValidationError{Details: details}
	}

	return model.SignupRecord{
		Email:     email,
		Tab:       tab,
		Name:      name,
		Source:    source,
		Tags:      tags,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *signupService) verifyToken(ctx context.Context, in SignupInput) error {
	start := time.Now()
	token := strings.TrimSpace(in.TurnstileToken)
	if token == "" {
		s.metrics.ObserveVerification(false, time.Since(start))
		return ErrBotCheck
	}

	err := s.verifier.Verify(ctx, token, in.RemoteIP)
	s.metrics.ObserveVerification(err == nil, time.Since(start))
	if err != nil {
		logger.Warn("bot verification failed", "error", err)
		return ErrBotCheck
	}
	return nil
}

func (s *signupService) exists(ctx context.Context, rec model.SignupRecord) (bool, error) {
	start := time.Now()
	var found bool
	var err error
	if s.opts.DedupeAcrossTabs {
		found, err = s.store.ExistsAnyTab(ctx, rec.Email)
	} else {
		found, err = s.store.Exists(ctx, rec.Tab, rec.Email)
	}
	s.metrics.ObserveStorage("exists", err == nil, time.Since(start))
	return found, err
}

func (s *signupService) append(ctx context.Context, rec model.SignupRecord) error {
	start := time.Now()
	err := s.store.Append(ctx, rec)
	s.metrics.ObserveStorage("append", err == nil, time.Since(start))
	return err
}

func (s *signupService) notifyErrorDetached(stage string, cause error) {
	s.notifyDetached("error", func(ctx context.Context) error {
		return s.notifier.NotifyError(ctx, stage, cause)
	})
}

// notifyDetached runs fn without blocking the caller. Failures are logged
// and counted, never propagated.
func (s *signupService) notifyDetached(kind string, fn func(context.Context) error) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.NotifyTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			logger.Warn("notification delivery failed", "kind", kind, "error", err)
			s.metrics.CountNotification(kind, false)
			return
		}
		s.metrics.CountNotification(kind, true)
	}()
}
