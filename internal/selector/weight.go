package selector

import (
	"math"
	"time"
)

const (
	neverReviewedBoost = 1.5
	stalenessPerHour   = 0.1
	stalenessCap       = 1.0
)

// Weight scores a candidate for the weighted draw. The score is the product
// of four independent boosts so that a struggling, recently failed, barely
// seen, stale card compounds rather than averages out:
//
//	struggle:  2.0 - success rate, so a 0% card counts double a 100% card
//	failure:   x10 within 5 minutes of a miss, x3 within 30, x1.5 within 60
//	exposure:  x2 unseen, x1.5 under 3 reviews, x1.2 under 5
//	staleness: up to +100% at 0.1 per hour since the last review
func Weight(c Candidate, now time.Time) float64 {
	w := 2.0 - c.Memory.SuccessRate()

	if !c.LastFailure.IsZero() {
		switch since := now.Sub(c.LastFailure); {
		case since < 5*time.Minute:
			w *= 10
		case since < 30*time.Minute:
			w *= 3
		case since < time.Hour:
			w *= 1.5
		}
	}

	switch n := c.Memory.TotalReviews; {
	case n == 0:
		w *= 2.0
	case n < 3:
		w *= 1.5
	case n < 5:
		w *= 1.2
	}

	if c.LastReview.IsZero() {
		w *= neverReviewedBoost
	} else {
		hours := now.Sub(c.LastReview).Hours()
		if hours < 0 {
			hours = 0
		}
		w *= 1.0 + math.Min(hours*stalenessPerHour, stalenessCap)
	}

	return w
}
