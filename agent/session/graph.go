package session

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/teerapat/estate-call-agent/agent/nodes"
)

func (s *Session) compileCallGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.CallState, error) {
			return nodex.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("dial",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.Dial(in, s.connectDelay)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dial: %w", err)
	}

	if err := graph.AddLambdaNode("open_call",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.OpenCall(in, s.ledger)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node open_call: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_property",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.ResolveProperty(in, s.finder)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_property: %w", err)
	}

	if err := graph.AddLambdaNode("opening_turn",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.OpeningTurn(ctx, in, s.responder)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node opening_turn: %w", err)
	}

	if err := graph.AddLambdaNode("client_turn",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.ClientTurn(in, s.simulator)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node client_turn: %w", err)
	}

	if err := graph.AddLambdaNode("agent_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.AgentReply(ctx, in, s.responder)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node agent_reply: %w", err)
	}

	if err := graph.AddLambdaNode("record_notes",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.RecordNotes(in, s.ledger)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node record_notes: %w", err)
	}

	if err := graph.AddLambdaNode("decide_outcome",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.DecideOutcome(ctx, in, s.responder, s.decider, s.ledger)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node decide_outcome: %w", err)
	}

	if err := graph.AddLambdaNode("schedule_appointment",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.ScheduleAppointment(ctx, in, s.responder, s.planner, s.ledger)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node schedule_appointment: %w", err)
	}

	if err := graph.AddLambdaNode("close_call",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (*nodex.CallState, error) {
			return nodex.CloseCall(in, s.ledger)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node close_call: %w", err)
	}

	if err := graph.AddLambdaNode("finalize",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.CallState) (nodex.GraphOutput, error) {
			return nodex.Finalize(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "dial"},
		{"dial", "open_call"},
		{"open_call", "resolve_property"},
		{"resolve_property", "opening_turn"},
		{"opening_turn", "client_turn"},
		{"client_turn", "agent_reply"},
		{"agent_reply", "record_notes"},
		{"record_notes", "decide_outcome"},
		{"decide_outcome", "schedule_appointment"},
		{"schedule_appointment", "close_call"},
		{"close_call", "finalize"},
		{"finalize", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("session.make_call"))
	if err != nil {
		return nil, fmt.Errorf("compile call graph: %w", err)
	}
	return runner, nil
}
