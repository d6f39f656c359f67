// Package scheduler flips the intake flag at the configured open and
// close hours.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"tg_account_bot/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SettingsStore interface {
	SetAccountsOpen(ctx context.Context, open bool) error
}

type Config struct {
	Timezone  string `yaml:"timezone"`
	OpenHour  int    `yaml:"openHour"`
	CloseHour int    `yaml:"closeHour"`
}

// Scheduler runs two daily cron triggers in the configured time zone.
// Each trigger writes an absolute value, so a repeated fire is a no-op.
// There is no catch-up: if the process is down at trigger time the flag
// keeps its last value until the next fire.
type Scheduler struct {
	cron  *cron.Cron
	store SettingsStore
}

func New(cfg Config, store SettingsStore) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	s := &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		store: store,
	}

	_, err = s.cron.AddFunc(fmt.Sprintf("0 %d * * *", cfg.OpenHour), s.openIntake)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule open trigger: %w", err)
	}
	_, err = s.cron.AddFunc(fmt.Sprintf("0 %d * * *", cfg.CloseHour), s.closeIntake)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule close trigger: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Logger().Info("scheduler started")
}

// Stop halts the triggers and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Logger().Info("scheduler stopped")
}

func (s *Scheduler) openIntake() {
	s.setOpen(true)
}

func (s *Scheduler) closeIntake() {
	s.setOpen(false)
}

func (s *Scheduler) setOpen(open bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.SetAccountsOpen(ctx, open); err != nil {
		logger.Logger().Error("failed to update intake flag",
			zap.Bool("open", open), zap.Error(err))
		return
	}
	logger.Logger().Info("intake flag updated", zap.Bool("open", open))
}
