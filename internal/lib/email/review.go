package email

import (
	"fmt"
	"strconv"
)

// ReviewSubmitted describes a freshly stored review.
type ReviewSubmitted struct {
	ReviewID   int
	PokemonID  int
	ReviewerID int
	Title      string
	Rating     int
}

func (r ReviewSubmitted) templateData() map[string]string {
	return map[string]string{
		"ReviewID":   strconv.Itoa(r.ReviewID),
		"PokemonID":  strconv.Itoa(r.PokemonID),
		"ReviewerID": strconv.Itoa(r.ReviewerID),
		"Title":      r.Title,
		"Rating":     strconv.Itoa(r.Rating),
	}
}

// SendReviewSubmittedEmail tells a moderator that a review is waiting.
func (c *Client) SendReviewSubmittedEmail(to string, review ReviewSubmitted) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("New review: %s", review.Title),
		TemplateReviewSubmitted,
		review.templateData(),
	)
}

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateReviewSubmitted: ReviewSubmitted{
		ReviewID:   1,
		PokemonID:  25,
		ReviewerID: 7,
		Title:      "Shockingly good",
		Rating:     5,
	}.templateData(),
}
