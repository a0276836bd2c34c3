package contract

import "context"

// Stage tells the responder which agent turn it is producing.
type Stage string

const (
	StageOpening    Stage = "opening"
	StageReply      Stage = "reply"
	StageScheduling Stage = "scheduling"
)

// SlotOption is one candidate viewing slot.
type SlotOption struct {
	Date string
	Time string
}

// ScheduleOffer carries the two offered slots and the one the client picked.
type ScheduleOffer struct {
	Option1  SlotOption
	Option2  SlotOption
	Selected SlotOption
}

// RespondRequest is the context handed to a responder for one agent turn.
// Each implementation consumes the fields it needs for the given stage.
type RespondRequest struct {
	Stage         Stage
	Client        ClientInfo
	ClientMessage string
	History       []Turn
	Property      *Property
	AgentContext  string
	Offer         *ScheduleOffer
}

// Responder produces the next agent utterance. Implementations absorb their
// own backend failures and always return usable text.
type Responder interface {
	Respond(ctx context.Context, req RespondRequest) string
}

// SentimentAnalyzer is the optional capability of judging a client message.
// Callers discover it by type assertion on the Responder, never by concrete
// type.
type SentimentAnalyzer interface {
	AssessSentiment(ctx context.Context, clientMessage string) SentimentAssessment
}

// ClientSimulator stands in for the speech-recognition side of the call:
// given the current flow, it yields the client's next utterance. Swapping in
// a real transcription source does not touch the session.
type ClientSimulator interface {
	NextUtterance(flow Flow) string
}

// DescriptionGenerator produces marketing copy for a listing. Unlike
// Respond, it reports failure so the catalog can keep the original text.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, p Property) (string, error)
}
