// Package jobs runs the periodic maintenance tasks.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"edusuite_backend/internals/configs"
	assistantService "edusuite_backend/internals/features/ai/assistant/service"
	feeService "edusuite_backend/internals/features/finance/fees/service"
	helper "edusuite_backend/internals/helpers"
)

const jobTimeout = 4 * time.Minute

// RunOverdueSweep marks Pending fees past their due date as Overdue.
func RunOverdueSweep(ctx context.Context, fees *feeService.FeeService) (int64, error) {
	n, err := fees.MarkOverdue(ctx, helper.Today())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("rows", n).Msg("[FEE-SWEEP] marked overdue")
	}
	return n, nil
}

// RunCachePrune drops AI cache entries older than ttlDays.
func RunCachePrune(ctx context.Context, assistant *assistantService.AssistantService, ttlDays int) (int64, error) {
	if ttlDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
	n, err := assistant.PruneCache(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("rows", n).Time("cutoff", cutoff).Msg("[AI-CACHE] pruned")
	}
	return n, nil
}

// Start schedules both jobs and starts the cron runner. The caller stops it on shutdown.
func Start(cfg *configs.Config, fees *feeService.FeeService, assistant *assistantService.AssistantService) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(cfg.FeeOverdueCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := RunOverdueSweep(ctx, fees); err != nil {
			log.Error().Err(err).Msg("[FEE-SWEEP] failed")
		}
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cfg.AICacheCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := RunCachePrune(ctx, assistant, cfg.AICacheTTLDays); err != nil {
			log.Error().Err(err).Msg("[AI-CACHE] prune failed")
		}
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("fee_schedule", cfg.FeeOverdueCron).
		Str("cache_schedule", cfg.AICacheCron).
		Int("cache_ttl_days", cfg.AICacheTTLDays).
		Msg("scheduler started")
	c.Start()
	return c, nil
}
