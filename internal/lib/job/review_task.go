package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const (
	// TaskReviewSubmitted is queued after a review is stored.
	TaskReviewSubmitted = "review:submitted"
)

type ReviewSubmittedPayload struct {
	ReviewID   int    `json:"review_id"`
	PokemonID  int    `json:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id"`
	Title      string `json:"title"`
	Rating     int    `json:"rating"`
}

// NewReviewSubmittedTask builds the task for review. It is retried up to
// three times and given thirty seconds per attempt.
func NewReviewSubmittedTask(review *model.Review) (*asynq.Task, error) {
	payload, err := json.Marshal(ReviewSubmittedPayload{
		ReviewID:   review.ID,
		PokemonID:  review.PokemonID,
		ReviewerID: review.ReviewerID,
		Title:      review.Title,
		Rating:     review.Rating,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReviewSubmitted,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
