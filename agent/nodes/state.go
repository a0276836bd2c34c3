// Package callnode holds the graph state and node functions the call
// session graph is composed from.
package callnode

import (
	"errors"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

var (
	ErrInvalidClient = errors.New("client id and name are required")
	ErrNilState      = errors.New("call state is nil")
)

// Ledger is the slice of the CRM ledger the call graph writes to.
type Ledger interface {
	Open(client contractx.ClientInfo) contractx.CallRecord
	AppendNote(callID, content string)
	SetSentiment(callID string, assessment contractx.SentimentAssessment)
	SetOutcome(callID, outcome string)
	Close(callID string) (contractx.CallRecord, error)
	ScheduleAppointment(client contractx.ClientInfo, date, timeOfDay, propertyID string) contractx.Appointment
}

// PropertyFinder resolves a property id to a listing.
type PropertyFinder interface {
	Find(id string) (contractx.Property, bool)
}

// SlotPlanner produces viewing slot offers.
type SlotPlanner interface {
	Offer(flow contractx.Flow) contractx.ScheduleOffer
}

// OutcomeDecider maps an optional sentiment assessment to a call outcome.
type OutcomeDecider interface {
	Decide(s *contractx.SentimentAssessment) contractx.Outcome
}

// GraphInput starts one call.
type GraphInput struct {
	Client     contractx.ClientInfo
	PropertyID string
}

// GraphOutput summarizes the completed call.
type GraphOutput struct {
	CallID       string
	Outcome      contractx.Outcome
	OutcomeLabel string
	Duration     string
}

// CallState is threaded through the graph; each node fills in its part.
type CallState struct {
	Client     contractx.ClientInfo
	PropertyID string

	CallID   string
	Flow     contractx.Flow
	Property *contractx.Property

	History     []contractx.Turn
	ClientReply string
	AgentReply  string

	Sentiment   *contractx.SentimentAssessment
	Outcome     contractx.Outcome
	Appointment *contractx.Appointment

	Record contractx.CallRecord
}

// ValidateRequest checks the call input and seeds the state.
func ValidateRequest(in GraphInput) (*CallState, error) {
	if in.Client.ID == "" || in.Client.Name == "" {
		return nil, ErrInvalidClient
	}
	return &CallState{
		Client:     in.Client,
		PropertyID: in.PropertyID,
	}, nil
}
