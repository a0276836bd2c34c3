// Package session orchestrates one outreach call from dial to closed record.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	nodex "github.com/teerapat/estate-call-agent/agent/nodes"
)

// Config tunes the session.
type Config struct {
	AgentName    string
	ConnectDelay time.Duration
}

// Result summarizes a completed call.
type Result struct {
	CallID       string
	Outcome      contractx.Outcome
	OutcomeLabel string
	Duration     string
}

// Session runs calls through the compiled call graph. One Session may serve
// many calls, including concurrently; all per-call state lives in the graph
// input/output.
type Session struct {
	ledger    nodex.Ledger
	finder    nodex.PropertyFinder
	responder contractx.Responder
	decider   nodex.OutcomeDecider
	planner   nodex.SlotPlanner
	simulator contractx.ClientSimulator

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	agentName    string
	connectDelay time.Duration
}

// New wires the collaborators and compiles the call graph.
func New(
	ledger nodex.Ledger,
	finder nodex.PropertyFinder,
	responder contractx.Responder,
	decider nodex.OutcomeDecider,
	planner nodex.SlotPlanner,
	simulator contractx.ClientSimulator,
	cfg Config,
) (*Session, error) {
	if ledger == nil {
		return nil, errors.New("crm ledger is required")
	}
	if finder == nil {
		return nil, errors.New("property catalog is required")
	}
	if responder == nil {
		return nil, errors.New("responder is required")
	}
	if decider == nil {
		return nil, errors.New("outcome decider is required")
	}
	if planner == nil {
		return nil, errors.New("slot planner is required")
	}
	if simulator == nil {
		return nil, errors.New("client simulator is required")
	}

	agentName := strings.TrimSpace(cfg.AgentName)
	if agentName == "" {
		agentName = "Sarah"
	}

	s := &Session{
		ledger:       ledger,
		finder:       finder,
		responder:    responder,
		decider:      decider,
		planner:      planner,
		simulator:    simulator,
		agentName:    agentName,
		connectDelay: cfg.ConnectDelay,
	}

	graphRunner, err := s.compileCallGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// MakeCall runs one call for the client, optionally against a specific
// property. The call always reaches a closed record; only an invalid client
// or a ledger failure aborts it.
func (s *Session) MakeCall(ctx context.Context, client contractx.ClientInfo, propertyID string) (Result, error) {
	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		Client:     client,
		PropertyID: propertyID,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		CallID:       out.CallID,
		Outcome:      out.Outcome,
		OutcomeLabel: out.OutcomeLabel,
		Duration:     out.Duration,
	}, nil
}
