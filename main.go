package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	catalogx "github.com/teerapat/estate-call-agent/agent/catalog"
	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	"github.com/teerapat/estate-call-agent/agent/crm"
	"github.com/teerapat/estate-call-agent/agent/outcome"
	"github.com/teerapat/estate-call-agent/agent/responder"
	"github.com/teerapat/estate-call-agent/agent/schedule"
	scriptx "github.com/teerapat/estate-call-agent/agent/script"
	"github.com/teerapat/estate-call-agent/agent/session"
	configx "github.com/teerapat/estate-call-agent/pkg/config"
	_ "github.com/teerapat/estate-call-agent/pkg/logger/autoload"
	"github.com/teerapat/estate-call-agent/pkg/openaix"
)

func main() {
	ctx := context.Background()

	resp, generator, agentName := buildResponder()

	var catalogOpts []catalogx.Option
	if generator != nil {
		catalogOpts = append(catalogOpts, catalogx.WithDescriptionGenerator(generator))
	}
	catalog := catalogx.New(ctx, catalogOpts...)

	ledger := crm.NewLedger()

	sess, err := session.New(
		ledger,
		catalog,
		resp,
		outcome.New(nil),
		schedule.NewPlanner(nil, nil),
		scriptx.NewSimulatedClient(nil),
		session.Config{
			AgentName:    agentName,
			ConnectDelay: 2 * time.Second,
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("build call session")
	}

	client := contractx.ClientInfo{
		ID:       "client123",
		Name:     "John Smith",
		Phone:    "(555) 123-4567",
		Email:    "john.smith@example.com",
		Interest: "residential",
		Location: "downtown",
		Budget:   700000,
	}

	fmt.Println("\n=== GENERAL INQUIRY CALL ===")
	if _, err := sess.MakeCall(ctx, client, ""); err != nil {
		log.Fatal().Err(err).Msg("general inquiry call failed")
	}

	fmt.Println("\n=== SPECIFIC PROPERTY INQUIRY CALL ===")
	if _, err := sess.MakeCall(ctx, client, "prop002"); err != nil {
		log.Fatal().Err(err).Msg("property inquiry call failed")
	}

	printCallHistory(ledger)
	printAppointments(ledger, catalog)
}

// buildResponder prefers the generative backend and degrades to the canned
// scripts when it cannot be configured.
func buildResponder() (contractx.Responder, contractx.DescriptionGenerator, string) {
	cfg, err := configx.Load[openaix.Config]("OPENAI")
	if err != nil {
		log.Warn().Err(err).Msg("openai configuration unavailable, falling back to template responses")
		return responder.NewTemplate("Sarah"), nil, "Sarah"
	}

	client, err := openaix.NewClient(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("openai client construction failed, falling back to template responses")
		return responder.NewTemplate(cfg.AgentName), nil, cfg.AgentName
	}

	gen := responder.NewOpenAI(client, *cfg)
	log.Info().Str("model", cfg.Model).Msg("openai integration enabled")
	return gen, gen, cfg.AgentName
}

func printCallHistory(ledger *crm.Ledger) {
	fmt.Println("\n=== CALL HISTORY ===")
	for _, call := range ledger.CallHistory("") {
		fmt.Printf("Call ID: %s\n", call.ID)
		fmt.Printf("Client: %s\n", call.Client.Name)
		fmt.Printf("Start Time: %s\n", call.StartTime.Format(time.DateTime))
		if call.EndTime != nil {
			fmt.Printf("End Time: %s\n", call.EndTime.Format(time.DateTime))
		}
		fmt.Printf("Duration: %s\n", call.Duration)
		fmt.Printf("Outcome: %s\n", call.Outcome)
		if call.Sentiment != nil {
			fmt.Printf("Sentiment: %s (interest: %s)\n", call.Sentiment.Sentiment, call.Sentiment.InterestLevel)
		}
		fmt.Printf("Notes: %d entries\n\n", len(call.Notes))
	}
}

func printAppointments(ledger *crm.Ledger, catalog *catalogx.Catalog) {
	fmt.Println("\n=== APPOINTMENTS ===")
	for _, apt := range ledger.Appointments("") {
		fmt.Printf("Appointment ID: %s\n", apt.ID)
		fmt.Printf("Client: %s\n", apt.Client.Name)
		fmt.Printf("Date/Time: %s at %s\n", apt.Date, apt.Time)
		fmt.Printf("Property: %s\n", catalog.NameFor(apt.PropertyID))
		fmt.Printf("Status: %s\n\n", apt.Status)
	}
}
