package callnode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// OpeningTurn produces the agent's opening utterance: a personalized
// greeting for a general inquiry, a listing pitch for a property inquiry.
func OpeningTurn(ctx context.Context, in *CallState, resp contractx.Responder) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	text := resp.Respond(ctx, contractx.RespondRequest{
		Stage:    contractx.StageOpening,
		Client:   in.Client,
		Property: in.Property,
	})
	in.History = append(in.History, contractx.Turn{Role: contractx.RoleAgent, Text: text})

	log.Info().Str("call_id", in.CallID).Str("speaker", "agent").Msg(text)
	return in, nil
}

// ClientTurn obtains the simulated client utterance. This node is where a
// real speech-to-text transcript would enter the graph.
func ClientTurn(in *CallState, sim contractx.ClientSimulator) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	in.ClientReply = sim.NextUtterance(in.Flow)
	in.History = append(in.History, contractx.Turn{Role: contractx.RoleClient, Text: in.ClientReply})

	log.Info().Str("call_id", in.CallID).Str("speaker", "client").Msg(in.ClientReply)
	return in, nil
}

// AgentReply answers the client's utterance, grounded in the conversation so
// far.
func AgentReply(ctx context.Context, in *CallState, resp contractx.Responder) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	// History minus the trailing client turn; the responder receives that
	// turn separately as the message being answered.
	history := in.History[:len(in.History)-1]
	text := resp.Respond(ctx, contractx.RespondRequest{
		Stage:         contractx.StageReply,
		Client:        in.Client,
		ClientMessage: in.ClientReply,
		History:       history,
		Property:      in.Property,
	})
	in.AgentReply = text
	in.History = append(in.History, contractx.Turn{Role: contractx.RoleAgent, Text: text})

	log.Info().Str("call_id", in.CallID).Str("speaker", "agent").Msg(text)
	return in, nil
}

// RecordNotes writes the exchange to the call record.
func RecordNotes(in *CallState, ledger Ledger) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	ledger.AppendNote(in.CallID, fmt.Sprintf("Client: %s\nAgent: %s", in.ClientReply, in.AgentReply))
	return in, nil
}
