package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/config"
	"github.com/eldhojacob/dairyfarm/internal/service/reporting"
	whatsappclient "github.com/eldhojacob/dairyfarm/pkg/clients/whatsapp"
)

// Scheduler pushes the previous month's revenue summary to the owner on a
// cron schedule.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	client       whatsappclient.Client
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured timezone so "first of the month at 08:00" means farm time.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, client whatsappclient.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		client:       client,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the monthly summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendMonthlySummary)
	if err != nil {
		s.logger.Error("failed to schedule monthly summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendMonthlySummary() {
	s.logger.Info("generating monthly summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// The job fires at the start of a month and reports on the one just ended.
	now := time.Now()
	previous := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	summary, err := s.reportingSvc.MonthlySummary(ctx, previous.Year(), previous.Month())
	if err != nil {
		s.logger.Error("failed to generate monthly summary", zap.Error(err))
		return
	}

	if err := s.client.SendTextMessage(ctx, s.cfg.WhatsApp.OwnerNumber, summary); err != nil {
		s.logger.Error("failed to send monthly summary", zap.Error(err))
		return
	}
	s.logger.Info("monthly summary sent successfully")
}
