// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"
	"time"

	"github.com/canonical/account-service/internal/cache"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store StorageInterface
	cache SubscriptionCacheInterface
	tx    CoordinatorInterface
	clock ClockInterface

	// expiryGrace keeps an expired subscription usable for a while after its
	// expiry, cancellationGrace is how long a canceled account survives before
	// it is due for deletion.
	expiryGrace       time.Duration
	cancellationGrace time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateInitial provisions the default-plan subscription for a new account.
// It is called from the account creation transaction and joins it.
func (s *Service) CreateInitial(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.CreateInitial")
	defer span.End()

	plan, err := GetPlan(DefaultPlan)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.CreateSubscription(ctx, &types.Subscription{
			AccountID: accountID,
			Plan:      plan.Name,
			ExpiresOn: s.clock.Now().Add(plan.Duration),
		})
		if err != nil {
			return err
		}
		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// Get returns the account's subscription, read through the cache.
func (s *Service) Get(ctx context.Context, accountID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Get")
	defer span.End()

	cached, found, err := s.cache.LoadSubscription(ctx, accountID)
	if err != nil {
		s.logger.Errorf("failed to load subscription from cache: %v", err)
	} else if found {
		return subscriptionFrom(accountID, cached), nil
	}

	sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub)); err != nil {
		s.logger.Errorf("failed to sync subscription to cache: %v", err)
	}

	return sub, nil
}

// GetStatus derives the lifecycle flags from the subscription and the clock.
func (s *Service) GetStatus(ctx context.Context, accountID string) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.GetStatus")
	defer span.End()

	sub, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	expired := s.isExpired(sub, now)
	return &Status{
		Plan:          sub.Plan,
		Active:        s.isActive(sub, now),
		Expired:       expired,
		Paused:        sub.Paused,
		Canceled:      sub.Canceled,
		InGracePeriod: expired && s.inGracePeriod(sub, now),
	}, nil
}

func (s *Service) Pause(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Pause")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		sub.Paused = true
		if err := s.store.UpdateSubscription(ctx, sub, []string{"paused"}); err != nil {
			return err
		}
		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// Cancel flags the subscription canceled and schedules the account for
// deletion once the cancellation grace period runs out.
func (s *Service) Cancel(ctx context.Context, accountID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Cancel")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		sub.Canceled = true
		if err := s.store.UpdateSubscription(ctx, sub, []string{"canceled"}); err != nil {
			return err
		}

		err = s.store.CreateAccountDeletionRequest(ctx, &types.AccountDeletionRequest{
			AccountID:   accountID,
			RequestedBy: requestedBy,
			DueOn:       s.clock.Now().Add(s.cancellationGrace),
		})
		if err != nil {
			return err
		}

		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// Restore clears the paused and canceled flags and withdraws any pending
// deletion request.
func (s *Service) Restore(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Restore")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		sub.Paused = false
		sub.Canceled = false
		if err := s.store.UpdateSubscription(ctx, sub, []string{"paused", "canceled"}); err != nil {
			return err
		}
		if err := s.store.DeleteAccountDeletionRequests(ctx, accountID); err != nil {
			return err
		}
		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// Extend pushes the expiry out and records a subscription event on the
// current plan.
func (s *Service) Extend(ctx context.Context, accountID string, until time.Time, paymentID *string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.Extend")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		sub.ExpiresOn = until
		sub.Expired = false
		if err := s.store.UpdateSubscription(ctx, sub, []string{"expires_on", "expired"}); err != nil {
			return err
		}

		err = s.store.CreateSubscriptionEvent(ctx, &types.SubscriptionEvent{
			SubscriptionID: sub.ID,
			FromPlan:       sub.Plan,
			ToPlan:         sub.Plan,
			Date:           s.clock.Now(),
			ExpiresOn:      until,
			PaymentID:      paymentID,
		})
		if err != nil {
			return err
		}

		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// ChangePlan moves the subscription to another plan, resets the expiry to a
// full plan period and records the change as a subscription event.
func (s *Service) ChangePlan(ctx context.Context, accountID, planName string, paymentID *string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.ChangePlan")
	defer span.End()

	plan, err := GetPlan(planName)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.store.GetSubscriptionByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		fromPlan := sub.Plan
		now := s.clock.Now()

		sub.Plan = plan.Name
		sub.ExpiresOn = now.Add(plan.Duration)
		sub.Expired = false
		if err := s.store.UpdateSubscription(ctx, sub, []string{"plan", "expires_on", "expired"}); err != nil {
			return err
		}

		err = s.store.CreateSubscriptionEvent(ctx, &types.SubscriptionEvent{
			SubscriptionID: sub.ID,
			FromPlan:       fromPlan,
			ToPlan:         plan.Name,
			Date:           now,
			ExpiresOn:      sub.ExpiresOn,
			PaymentID:      paymentID,
		})
		if err != nil {
			return err
		}

		return s.cache.SyncSubscription(ctx, accountID, cachedFrom(sub))
	})
}

// IsActive reports whether the account's subscription currently grants
// access. An expired subscription still counts while in its grace period.
func (s *Service) IsActive(ctx context.Context, accountID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.IsActive")
	defer span.End()

	sub, err := s.Get(ctx, accountID)
	if err != nil {
		return false, err
	}
	return s.isActive(sub, s.clock.Now()), nil
}

func (s *Service) isExpired(sub *types.Subscription, now time.Time) bool {
	return sub.Expired || now.After(sub.ExpiresOn)
}

func (s *Service) inGracePeriod(sub *types.Subscription, now time.Time) bool {
	return now.Before(sub.ExpiresOn.Add(s.expiryGrace))
}

func (s *Service) isActive(sub *types.Subscription, now time.Time) bool {
	if sub.Paused || sub.Canceled {
		return false
	}
	if !s.isExpired(sub, now) {
		return true
	}
	return s.inGracePeriod(sub, now)
}

func cachedFrom(sub *types.Subscription) *cache.CachedSubscription {
	return &cache.CachedSubscription{
		ID:        sub.ID,
		Plan:      sub.Plan,
		ExpiresOn: sub.ExpiresOn,
		Expired:   sub.Expired,
		Paused:    sub.Paused,
		Canceled:  sub.Canceled,
	}
}

func subscriptionFrom(accountID string, cached *cache.CachedSubscription) *types.Subscription {
	return &types.Subscription{
		ID:        cached.ID,
		AccountID: accountID,
		Plan:      cached.Plan,
		ExpiresOn: cached.ExpiresOn,
		Expired:   cached.Expired,
		Paused:    cached.Paused,
		Canceled:  cached.Canceled,
	}
}

func NewService(
	store StorageInterface,
	subscriptionCache SubscriptionCacheInterface,
	tx CoordinatorInterface,
	clock ClockInterface,
	expiryGrace time.Duration,
	cancellationGrace time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.store = store
	s.cache = subscriptionCache
	s.tx = tx
	s.clock = clock

	s.expiryGrace = expiryGrace
	s.cancellationGrace = cancellationGrace

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
