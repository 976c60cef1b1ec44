package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"trendwatch-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerWeeklyDigestJob()
}

// ================================================
// JOB 1: Weekly Newsletter Digest (Monday at 8 AM UTC)
// ================================================
func (s *Scheduler) registerWeeklyDigestJob() error {
	payload, err := json.Marshal(DigestPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeEmailDigest, payload)

	_, err = s.scheduler.Register(
		"0 8 * * 1", // Monday at 8 AM
		task,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register WeeklyDigest job", err)
		return err
	}

	logger.Info("✓ Registered WeeklyDigest: Monday at 8 AM UTC", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
