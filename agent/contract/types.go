package contract

import "time"

// ClientInfo identifies the person being called. It is owned by the caller
// and read-only to every component.
type ClientInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Interest string `json:"interest"`
	Location string `json:"location"`
	Budget   int64  `json:"budget"`
}

type PropertyType string

const (
	PropertyResidential PropertyType = "Residential"
	PropertyCommercial  PropertyType = "Commercial"
)

// Property is a listing record. Immutable after catalog load, except the
// one-shot best-effort description enrichment performed at load time.
type Property struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        PropertyType `json:"type"`
	Price       int64        `json:"price"`
	Address     string       `json:"address"`
	Features    string       `json:"features"`
	Description string       `json:"description"`
}

type Role string

const (
	RoleAgent  Role = "agent"
	RoleClient Role = "client"
)

// Turn is one utterance in a call. The ordered slice of turns forms the
// conversation history, append-only for the lifetime of the call.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type InterestLevel string

const (
	InterestHigh   InterestLevel = "high"
	InterestMedium InterestLevel = "medium"
	InterestLow    InterestLevel = "low"
)

// SentimentAssessment is the structured judgment of a client utterance.
type SentimentAssessment struct {
	Sentiment     Sentiment     `json:"sentiment"`
	InterestLevel InterestLevel `json:"interest_level"`
	KeyConcerns   []string      `json:"key_concerns"`
	Preferences   []string      `json:"preferences"`
	NextAction    string        `json:"next_action"`
}

// DefaultAssessment is returned when the sentiment backend fails or produces
// output that cannot be parsed.
func DefaultAssessment() SentimentAssessment {
	return SentimentAssessment{
		Sentiment:     SentimentNeutral,
		InterestLevel: InterestMedium,
		KeyConcerns:   []string{},
		Preferences:   []string{},
		NextAction:    "ask_follow_up_questions",
	}
}

type Outcome string

const (
	OutcomeAppointmentScheduled Outcome = "appointment_scheduled"
	OutcomeInformationProvided  Outcome = "information_provided"
	OutcomeFollowUpRequired     Outcome = "follow_up_required"
	OutcomeNotInterested        Outcome = "not_interested"
)

// Label is the human-readable form recorded on the call record. A scheduled
// appointment is recorded as the fixed phrase "Appointment scheduled"; every
// other outcome is title-cased with underscores replaced by spaces.
func (o Outcome) Label() string {
	if o == OutcomeAppointmentScheduled {
		return "Appointment scheduled"
	}
	return titleWords(string(o))
}

func titleWords(s string) string {
	out := []byte(s)
	capitalize := true
	for i, c := range out {
		switch {
		case c == '_':
			out[i] = ' '
			capitalize = true
		case capitalize && c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
			capitalize = false
		default:
			capitalize = false
		}
	}
	return string(out)
}

type CallStatus string

const (
	CallInProgress CallStatus = "in_progress"
	CallCompleted  CallStatus = "completed"
)

// Note is one timestamped entry in a call record's note log.
type Note struct {
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

// CallRecord is the ledger's view of one call. EndTime and Duration are set
// exactly when Status is completed; Outcome is set before completion.
type CallRecord struct {
	ID        string               `json:"id"`
	Client    ClientInfo           `json:"client"`
	StartTime time.Time            `json:"start_time"`
	EndTime   *time.Time           `json:"end_time,omitempty"`
	Status    CallStatus           `json:"status"`
	Notes     []Note               `json:"notes"`
	Outcome   string               `json:"outcome,omitempty"`
	Sentiment *SentimentAssessment `json:"sentiment,omitempty"`
	Duration  string               `json:"duration,omitempty"`
}

// Appointment is a scheduled property viewing. An empty PropertyID marks a
// general inquiry. Immutable after creation.
type Appointment struct {
	ID         string     `json:"id"`
	Client     ClientInfo `json:"client"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	PropertyID string     `json:"property_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Flow string

const (
	FlowGeneral  Flow = "general"
	FlowProperty Flow = "property"
)
