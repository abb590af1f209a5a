package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"scentshop/kvstore"
	"scentshop/models"
)

// RegistrationStatus is the outcome of a registration check
type RegistrationStatus struct {
	Registered bool `json:"registered"`
	Redirect   bool `json:"redirect"`
}

// CheckRegistration evaluates the durable registration state. Registration
// is active when the flag plus both name and phone are present. When it is
// not, the visitor is redirected to the start page unless a skip or a
// registration happened within the grace period.
func (s *Session) CheckRegistration() (RegistrationStatus, error) {
	reg, err := kvstore.LoadRegistration(s.repo)
	if err != nil {
		return RegistrationStatus{}, err
	}

	if reg.Registered && reg.Name != "" && reg.Phone != "" {
		return RegistrationStatus{Registered: true}, nil
	}

	now := s.now()
	recentSkip := !reg.SkippedAt.IsZero() && now.Sub(reg.SkippedAt) < s.gracePeriod
	recentRegister := !reg.RegisteredAt.IsZero() && now.Sub(reg.RegisteredAt) < s.gracePeriod

	return RegistrationStatus{Redirect: !recentSkip && !recentRegister}, nil
}

// Register persists the visitor's name, phone and optional invite code and
// marks registration complete. Blank name or phone is a validation error.
func (s *Session) Register(input models.RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return ErrBlankDetails
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := kvstore.SaveRegistration(s.repo, input.Name, input.Phone, input.InviteCode, s.now()); err != nil {
		return err
	}

	s.user.Name = input.Name
	s.user.Phone = input.Phone
	if input.InviteCode != "" {
		s.user.InviteCode = input.InviteCode
	}
	return nil
}

// SkipRegistration records a skip: the flag, name and phone are cleared and
// only the skip timestamp survives, opening the grace period.
func (s *Session) SkipRegistration() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := kvstore.SaveSkip(s.repo, s.now()); err != nil {
		return err
	}

	s.user.Name = ""
	s.user.Phone = ""
	return nil
}

// WatchRegistration re-runs the registration check on a fixed interval
// until ctx is cancelled. The check at startup belongs to the caller.
func (s *Session) WatchRegistration(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, err := s.CheckRegistration()
			if err != nil {
				s.logger.Error("registration check failed", zap.Error(err))
				continue
			}
			if status.Redirect {
				s.logger.Info("registration required, visitor will be redirected")
			}
		}
	}
}
