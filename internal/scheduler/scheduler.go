// Package scheduler triggers the recurring payment run on a cron spec.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Runner interface {
	RunDue(ctx context.Context, asOf time.Time) (*domain.RunReport, error)
}

type Scheduler struct {
	runner Runner
	spec   string
	cron   *cron.Cron
	now    func() time.Time
}

func New(runner Runner, spec string) *Scheduler {
	return &Scheduler{
		runner: runner,
		spec:   spec,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{})),
		),
		now: time.Now,
	}
}

// Start registers the run and returns immediately. The cron stops once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" {
		zap.L().Info("payment scheduler disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	zap.L().Info("payment scheduler started", zap.String("spec", s.spec))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		zap.L().Info("payment scheduler stopped")
	}()
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	asOf := domain.DateOf(s.now())
	report, err := s.runner.RunDue(ctx, asOf)
	if err != nil {
		zap.L().Error("scheduled payment run failed", zap.Time("as_of", asOf), zap.Error(err))
		return
	}
	zap.L().Info("scheduled payment run finished",
		zap.Time("as_of", asOf),
		zap.Int("executed", report.Executed),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped),
	)
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
