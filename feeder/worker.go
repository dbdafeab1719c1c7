package feeder

import (
	"context"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/vhurryharry/Oracle/feeder/logging"
	"github.com/vhurryharry/Oracle/x/oracle/calculations"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// TargetSource lists the feed targets the worker serves. The module keeper
// satisfies this directly for in-process feeders.
type TargetSource interface {
	FeedTargets(ctx context.Context) ([]types.FeedTarget, error)
}

// Submitter delivers one extracted observation.
type Submitter interface {
	Submit(ctx context.Context, key []byte, value types.OracleValue) error
}

// StaticTargets adapts a fixed target list to the TargetSource interface.
type StaticTargets []types.FeedTarget

func (s StaticTargets) FeedTargets(ctx context.Context) ([]types.FeedTarget, error) {
	return s, nil
}

// LogSubmitter logs observations instead of delivering them. Used by the
// feeder command's dry-run wiring.
type LogSubmitter struct{}

func (LogSubmitter) Submit(ctx context.Context, key []byte, value types.OracleValue) error {
	logging.Info("dry-run submit", types.Feeds,
		"key", fmt.Sprintf("%X", key), "value", value.String(), "kind", value.Kind().String())
	return nil
}

// Worker fetches every feed target, extracts the configured field and hands
// the converted value to the submitter.
type Worker struct {
	targets   TargetSource
	fetcher   *Fetcher
	submitter Submitter
}

func NewWorker(targets TargetSource, fetcher *Fetcher, submitter Submitter) *Worker {
	return &Worker{
		targets:   targets,
		fetcher:   fetcher,
		submitter: submitter,
	}
}

// RunOnce processes every feed target once. A failing target does not stop
// the others.
func (w *Worker) RunOnce(ctx context.Context) error {
	targets, err := w.targets.FeedTargets(ctx)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := w.processTarget(ctx, target); err != nil {
			logging.Warn("feed target failed", types.Feeds,
				"key", fmt.Sprintf("%X", target.Key), "error", err)
		}
	}
	return nil
}

func (w *Worker) processTarget(ctx context.Context, target types.FeedTarget) error {
	if len(target.Source) == 0 {
		return fmt.Errorf("no fetch source for key %X", target.Key)
	}
	doc, err := w.fetcher.Fetch(ctx, string(target.Source))
	if err != nil {
		return err
	}
	value, ok := calculations.ParseFeedValue(doc, target.JsonPath, target.Kind)
	if !ok {
		return errorsmod.Wrapf(types.ErrExtractionFailed, "field %q", target.JsonPath)
	}
	if err := w.submitter.Submit(ctx, target.Key, value); err != nil {
		return err
	}
	logging.Debug("submitted observation", types.Feeds,
		"key", fmt.Sprintf("%X", target.Key), "value", value.String())
	return nil
}

// Run polls every target each interval until ctx is done.
func (w *Worker) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := w.RunOnce(ctx); err != nil {
			logging.Error("feed run failed", types.Feeds, "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
