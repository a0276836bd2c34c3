package script

import (
	"math/rand"
	"time"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// SimulatedClient draws a plausible client utterance for the current flow.
// It implements contract.ClientSimulator; a real speech-to-text source would
// replace it without touching the session.
type SimulatedClient struct {
	r *rand.Rand
}

// NewSimulatedClient builds a simulator over the given random source. A nil
// source falls back to a time-seeded one.
func NewSimulatedClient(r *rand.Rand) *SimulatedClient {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedClient{r: r}
}

func (s *SimulatedClient) NextUtterance(flow contractx.Flow) string {
	var pool []string
	if flow == contractx.FlowProperty {
		pool = PropertyClientReplies()
	} else {
		pool = GeneralClientReplies()
	}
	return pool[s.r.Intn(len(pool))]
}
