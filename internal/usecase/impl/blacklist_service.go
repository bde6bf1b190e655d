// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"
	"addressbook/internal/util"
)

var (
	// ErrBlacklistInterrupted is returned when the zone lookup was abandoned because the
	// caller's context was cancelled or expired. It is never retried.
	ErrBlacklistInterrupted = errors.New("blacklist lookup interrupted")
	// ErrBlacklistUnavailable is returned when the zone lookup kept failing after all retry attempts,
	// or failed in a way that retrying cannot fix.
	ErrBlacklistUnavailable = errors.New("blacklist lookup unavailable")
)

type blacklistService struct {
	zoneClient service.ZoneClient
	policy     util.RetryPolicy
	logger     *slog.Logger
}

// NewBlacklistService creates a new blacklist service instance
func NewBlacklistService(zoneClient service.ZoneClient, cfg *config.Config, logger *slog.Logger) usecase.BlacklistUsecase {
	retry := config.RetryConfig{}
	if cfg.Blacklist != nil {
		retry = cfg.Blacklist.Retry
	}
	retry = retry.WithDefaults()

	return &blacklistService{
		zoneClient: zoneClient,
		policy: util.RetryPolicy{
			MaxAttempts: retry.MaxAttempts,
			Delay:       retry.Delay,
		},
		logger: logger,
	}
}

func (s *blacklistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FilterExcludingBlacklisted drops the addresses whose postcode is blacklisted, keeping order
func (s *blacklistService) FilterExcludingBlacklisted(ctx context.Context, addresses []*entity.Address) ([]*entity.Address, error) {
	if len(addresses) == 0 {
		return []*entity.Address{}, nil
	}

	zones, err := s.fetchZones(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Address, 0, len(addresses))
	for _, address := range addresses {
		if !inZones(zones, address.Postcode) {
			filtered = append(filtered, address)
		}
	}

	s.log(ctx).Debug("Filtered blacklisted addresses",
		slog.Int("total", len(addresses)),
		slog.Int("kept", len(filtered)),
		slog.Int("zones", len(zones)),
	)

	return filtered, nil
}

// IsBlacklisted reports whether the postcode matches any blacklisted zone
func (s *blacklistService) IsBlacklisted(ctx context.Context, postcode string) (bool, error) {
	zones, err := s.fetchZones(ctx)
	if err != nil {
		return false, err
	}

	return inZones(zones, postcode), nil
}

// fetchZones reads the zone set once per attempt under the retry policy
func (s *blacklistService) fetchZones(ctx context.Context) ([]*entity.Zone, error) {
	policy := s.policy
	policy.OnRetry = func(attempt int, err error) {
		s.log(ctx).Warn("Zone lookup failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", policy.Delay),
			slog.Any("error", err),
		)
	}

	var zones []*entity.Zone
	err := util.Retry(ctx, policy, func(ctx context.Context) error {
		var lookupErr error
		zones, lookupErr = s.zoneClient.GetAllZones(ctx)

		return lookupErr
	}, isTransientZoneError)
	if err == nil {
		return zones, nil
	}

	if isInterruption(ctx, err) {
		return nil, fmt.Errorf("%w: %w", ErrBlacklistInterrupted, err)
	}

	return nil, fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
}

func isTransientZoneError(err error) bool {
	return errors.Is(err, service.ErrZoneLookupTransient)
}

// isInterruption reports cancellation of the caller's request. A timeout the zone client
// reported as transient is not an interruption.
func isInterruption(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}

	return errors.IsContextDone(err) && !isTransientZoneError(err)
}

func inZones(zones []*entity.Zone, postcode string) bool {
	for _, zone := range zones {
		if zone != nil && zone.Matches(postcode) {
			return true
		}
	}

	return false
}
