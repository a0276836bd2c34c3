package callnode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	scriptx "github.com/teerapat/estate-call-agent/agent/script"
)

// DecideOutcome classifies how the call ended.
//
// Property inquiries resolve deterministically: an explicit viewing request
// schedules an appointment, anything else counts as information provided.
// Sentiment, when the responder can assess it, is still recorded for the
// property flow but does not change that rule.
//
// General inquiries use the sentiment-driven mapping when the capability is
// present and the weighted random draw otherwise.
func DecideOutcome(ctx context.Context, in *CallState, resp contractx.Responder, decider OutcomeDecider, ledger Ledger) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	if analyzer, ok := resp.(contractx.SentimentAnalyzer); ok {
		assessment := analyzer.AssessSentiment(ctx, in.ClientReply)
		in.Sentiment = &assessment
		ledger.SetSentiment(in.CallID, assessment)
	}

	switch {
	case in.Flow == contractx.FlowProperty && in.ClientReply == scriptx.PropertyReplyViewing:
		in.Outcome = contractx.OutcomeAppointmentScheduled
	case in.Flow == contractx.FlowProperty:
		in.Outcome = contractx.OutcomeInformationProvided
	default:
		in.Outcome = decider.Decide(in.Sentiment)
	}

	log.Debug().Str("call_id", in.CallID).Str("outcome", string(in.Outcome)).Msg("outcome decided")
	return in, nil
}
