package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/deppfellow/pokemon-review/internal/lib/email"
)

// InitHandlers wires the dependencies task handlers need. Email stays off
// unless both a Resend key and a recipient are configured.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Integration.EmailEnabled() {
		logger.Info().Msg("review notification email disabled")
		return
	}
	j.mailer = email.NewClient(cfg, logger)
	j.recipient = cfg.Integration.NotificationEmail
}

func (j *JobService) handleReviewSubmittedTask(ctx context.Context, t *asynq.Task) error {
	var p ReviewSubmittedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal review submitted payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskReviewSubmitted).
		Int("review_id", p.ReviewID).
		Logger()

	if j.mailer == nil {
		logger.Debug().Msg("no mailer configured, dropping review notification")
		return nil
	}

	logger.Info().Msg("Processing review submitted task")

	err := j.mailer.SendReviewSubmittedEmail(j.recipient, email.ReviewSubmitted{
		ReviewID:   p.ReviewID,
		PokemonID:  p.PokemonID,
		ReviewerID: p.ReviewerID,
		Title:      p.Title,
		Rating:     p.Rating,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send review notification")
		return err
	}

	logger.Info().Msg("Successfully sent review notification")
	return nil
}
