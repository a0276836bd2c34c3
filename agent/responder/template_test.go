package responder

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	scriptx "github.com/teerapat/estate-call-agent/agent/script"
)

func TestTemplateHasNoSentimentCapability(t *testing.T) {
	t.Parallel()

	var r contractx.Responder = NewTemplate("Sarah")
	if _, ok := r.(contractx.SentimentAnalyzer); ok {
		t.Fatal("template responder must not offer sentiment analysis")
	}
}

func TestTemplateOpeningGeneral(t *testing.T) {
	t.Parallel()

	r := NewTemplate("Sarah")
	got := r.Respond(context.Background(), contractx.RespondRequest{
		Stage:  contractx.StageOpening,
		Client: contractx.ClientInfo{Name: "Jane Doe", Interest: "residential", Location: "suburbs"},
	})
	if !strings.Contains(got, "Hello Jane Doe, this is Sarah from Premier Real Estate.") {
		t.Errorf("opening missing greeting:\n%s", got)
	}
}

func TestTemplateOpeningProperty(t *testing.T) {
	t.Parallel()

	r := NewTemplate("Sarah")
	p := contractx.Property{
		Name: "Downtown Condo", Type: contractx.PropertyResidential,
		Price: 650000, Address: "456 Main St #302, Downtown, CA",
		Features: "2 bed, 2 bath, 1,100 sq ft", Description: "Modern condo",
	}
	got := r.Respond(context.Background(), contractx.RespondRequest{
		Stage:    contractx.StageOpening,
		Property: &p,
	})
	if !strings.Contains(got, "The Downtown Condo is a beautiful residential") {
		t.Errorf("opening missing property pitch:\n%s", got)
	}
}

func TestTemplateReplyUsesCannedTable(t *testing.T) {
	t.Parallel()

	r := NewTemplate("Sarah")
	got := r.Respond(context.Background(), contractx.RespondRequest{
		Stage:         contractx.StageReply,
		ClientMessage: scriptx.GeneralReplyWhatKind,
	})
	if !strings.Contains(got, "mix of modern condos") {
		t.Errorf("unexpected reply: %s", got)
	}
}

func TestTemplateSchedulingRendersOffer(t *testing.T) {
	t.Parallel()

	r := NewTemplate("Sarah")
	offer := contractx.ScheduleOffer{
		Option1:  contractx.SlotOption{Date: "Monday, June 01", Time: "10:00 AM"},
		Option2:  contractx.SlotOption{Date: "Tuesday, June 02", Time: "1:00 PM"},
		Selected: contractx.SlotOption{Date: "Monday, June 01", Time: "10:00 AM"},
	}
	got := r.Respond(context.Background(), contractx.RespondRequest{
		Stage: contractx.StageScheduling,
		Offer: &offer,
	})
	if !strings.Contains(got, "scheduled your viewing for Monday, June 01 at 10:00 AM") {
		t.Errorf("confirmation missing selected slot:\n%s", got)
	}
}
