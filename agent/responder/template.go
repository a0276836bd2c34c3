// Package responder produces agent utterances, either from the fixed script
// tables or through the OpenAI backend. Both variants absorb their own
// failures; callers never see an error from Respond.
package responder

import (
	"context"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	scriptx "github.com/teerapat/estate-call-agent/agent/script"
)

// Template answers from the embedded script templates and canned reply
// tables. It deliberately does not offer sentiment analysis; sessions using
// it take the weighted-random outcome path.
type Template struct {
	agentName string
}

var _ contractx.Responder = (*Template)(nil)

// NewTemplate builds the canned-script responder.
func NewTemplate(agentName string) *Template {
	return &Template{agentName: agentName}
}

func (t *Template) Respond(_ context.Context, req contractx.RespondRequest) string {
	switch req.Stage {
	case contractx.StageOpening:
		if req.Property != nil {
			return scriptx.PropertyDetails(*req.Property)
		}
		return scriptx.InitialContact(req.Client, t.agentName)

	case contractx.StageScheduling:
		if req.Offer != nil {
			return scriptx.AppointmentConfirmation(req.Offer.Option1, req.Offer.Option2, req.Offer.Selected)
		}
		return scriptx.GeneralReply(req.ClientMessage)

	default:
		if req.Property != nil {
			return scriptx.PropertyReply(*req.Property, req.ClientMessage)
		}
		return scriptx.GeneralReply(req.ClientMessage)
	}
}
