// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/deppfellow/pokemon-review/internal/lib/email"
	"github.com/deppfellow/pokemon-review/internal/model"
)

// reviewMailer sends review notifications.
type reviewMailer interface {
	SendReviewSubmittedEmail(to string, review email.ReviewSubmitted) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	// mailer is nil when email delivery is not configured.
	mailer    reviewMailer
	recipient string
}

// NewJobService creates a JobService backed by the configured Redis.
// Notifications go to the "default" queue; "critical" and "low" get
// a larger and smaller share of the workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReviewSubmitted, j.handleReviewSubmittedTask)
	return mux
}

// Start registers the task handlers and starts the workers in the
// background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.mux()); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}
	return nil
}

// Stop waits for running tasks and releases the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// NotifyReviewSubmitted queues a review:submitted task for review.
func (j *JobService) NotifyReviewSubmitted(ctx context.Context, review *model.Review) error {
	task, err := NewReviewSubmittedTask(review)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskReviewSubmitted, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int("review_id", review.ID).
		Msg("review notification queued")
	return nil
}
