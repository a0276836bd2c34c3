// Package outcome decides how a call ended.
package outcome

import (
	"fmt"
	"math/rand"
	"time"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// weightedOutcome pairs an outcome with its draw probability.
type weightedOutcome struct {
	outcome contractx.Outcome
	weight  float64
}

// defaultWeights is the distribution used when no sentiment assessment is
// available.
var defaultWeights = []weightedOutcome{
	{contractx.OutcomeAppointmentScheduled, 0.25},
	{contractx.OutcomeInformationProvided, 0.40},
	{contractx.OutcomeFollowUpRequired, 0.20},
	{contractx.OutcomeNotInterested, 0.15},
}

// Decider maps a sentiment assessment, or a weighted random draw when none
// is available, to a call outcome. It is pure apart from the injected random
// source.
type Decider struct {
	r          *rand.Rand
	cumulative []float64
	outcomes   []contractx.Outcome
}

// New builds a decider over the given random source. A nil source falls back
// to a time-seeded one; tests pass a seeded source for reproducible draws.
func New(r *rand.Rand) *Decider {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Decider{r: r}
	sum := 0.0
	for _, w := range defaultWeights {
		sum += w.weight
		d.cumulative = append(d.cumulative, sum)
		d.outcomes = append(d.outcomes, w.outcome)
	}
	// The weights are a fixed table; a sum other than 1.0 is a programmer
	// error, not a runtime condition.
	if sum < 0.999 || sum > 1.001 {
		panic(fmt.Sprintf("outcome weights sum to %v, want 1.0", sum))
	}
	return d
}

// Decide returns the outcome for the call. With a sentiment assessment the
// mapping is deterministic on interest level; note that not_interested is
// never produced on this path. Without one, the outcome is drawn from the
// fixed weighted distribution.
func (d *Decider) Decide(s *contractx.SentimentAssessment) contractx.Outcome {
	if s != nil {
		switch s.InterestLevel {
		case contractx.InterestHigh:
			return contractx.OutcomeAppointmentScheduled
		case contractx.InterestLow:
			return contractx.OutcomeFollowUpRequired
		default:
			return contractx.OutcomeInformationProvided
		}
	}

	draw := d.r.Float64()
	for i, bound := range d.cumulative {
		if draw < bound {
			return d.outcomes[i]
		}
	}
	return d.outcomes[len(d.outcomes)-1]
}
