package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	openaix "github.com/teerapat/estate-call-agent/pkg/openaix"
)

type fakeChat struct {
	content string
	err     error
	gotReqs []openaisdk.ChatCompletionNewParams
}

func (f *fakeChat) New(_ context.Context, body openaisdk.ChatCompletionNewParams, _ ...option.RequestOption) (*openaisdk.ChatCompletion, error) {
	f.gotReqs = append(f.gotReqs, body)
	if f.err != nil {
		return nil, f.err
	}
	return &openaisdk.ChatCompletion{
		Choices: []openaisdk.ChatCompletionChoice{
			{Message: openaisdk.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newTestResponder(chat completionClient) *OpenAI {
	return newOpenAI(chat, openaix.Config{Model: "gpt-4o", AgentName: "Sarah"})
}

func TestRespondBackendFailureReturnsApology(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{err: errors.New("api unreachable")})
	got := g.Respond(context.Background(), contractx.RespondRequest{
		Stage:         contractx.StageReply,
		ClientMessage: "Tell me about downtown.",
	})
	if got != FallbackApology {
		t.Errorf("Respond() = %q, want the fixed apology", got)
	}
}

func TestRespondEmptyCompletionReturnsApology(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{content: "   "})
	got := g.Respond(context.Background(), contractx.RespondRequest{
		Stage:         contractx.StageReply,
		ClientMessage: "Hello?",
	})
	if got != FallbackApology {
		t.Errorf("Respond() = %q, want the fixed apology", got)
	}
}

func TestRespondReplaysHistory(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{content: "Happy to help."}
	g := newTestResponder(chat)

	g.Respond(context.Background(), contractx.RespondRequest{
		Stage:         contractx.StageReply,
		ClientMessage: "What are the HOA fees?",
		History: []contractx.Turn{
			{Role: contractx.RoleAgent, Text: "Hello John."},
			{Role: contractx.RoleClient, Text: "Hi Sarah."},
		},
	})

	if len(chat.gotReqs) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(chat.gotReqs))
	}
	// system + 2 history turns + client message
	if got := len(chat.gotReqs[0].Messages); got != 4 {
		t.Errorf("message count = %d, want 4", got)
	}
}

func TestRespondOpeningIncludesPropertyContext(t *testing.T) {
	t.Parallel()

	chat := &fakeChat{content: "Let me tell you about it."}
	g := newTestResponder(chat)

	p := contractx.Property{
		Name: "Lakeside Villa", Type: contractx.PropertyResidential,
		Price: 1250000, Address: "123 Lake Dr", Features: "4 bed",
	}
	g.Respond(context.Background(), contractx.RespondRequest{
		Stage:    contractx.StageOpening,
		Property: &p,
	})

	sys := chat.gotReqs[0].Messages[0].OfSystem.Content.OfString.Value
	if !strings.Contains(sys, "Lakeside Villa") || !strings.Contains(sys, "$1,250,000") {
		t.Errorf("system persona missing property context:\n%s", sys)
	}
}

func TestAssessSentimentFailureReturnsDefault(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{err: errors.New("api unreachable")})
	got := g.AssessSentiment(context.Background(), "I love it!")
	if diff := cmp.Diff(contractx.DefaultAssessment(), got); diff != "" {
		t.Errorf("assessment mismatch (-want +got):\n%s", diff)
	}
}

func TestAssessSentimentUnparsableReturnsDefault(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{content: "sorry, I cannot answer that"})
	got := g.AssessSentiment(context.Background(), "I love it!")
	if diff := cmp.Diff(contractx.DefaultAssessment(), got); diff != "" {
		t.Errorf("assessment mismatch (-want +got):\n%s", diff)
	}
}

func TestAssessSentimentParsesFencedJSON(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{content: "```json\n" +
		`{"sentiment":"Positive","interest_level":"HIGH","key_concerns":["price"],"preferences":["3 bedrooms"],"next_action":"schedule a viewing"}` +
		"\n```"})
	got := g.AssessSentiment(context.Background(), "I want to see it.")

	want := contractx.SentimentAssessment{
		Sentiment:     contractx.SentimentPositive,
		InterestLevel: contractx.InterestHigh,
		KeyConcerns:   []string{"price"},
		Preferences:   []string{"3 bedrooms"},
		NextAction:    "schedule a viewing",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("assessment mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssessmentRejectsUnknownEnums(t *testing.T) {
	t.Parallel()

	_, err := parseAssessment(`{"sentiment":"ecstatic","interest_level":"high"}`)
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Errorf("error = %v, want ErrSchemaViolation", err)
	}

	_, err = parseAssessment(`{"sentiment":"positive","interest_level":"extreme"}`)
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Errorf("error = %v, want ErrSchemaViolation", err)
	}
}

func TestGenerateDescriptionPropagatesFailure(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{err: errors.New("api unreachable")})
	_, err := g.GenerateDescription(context.Background(), contractx.Property{Name: "Lakeside Villa"})
	if !errors.Is(err, contractx.ErrBackendInvoke) {
		t.Errorf("error = %v, want ErrBackendInvoke", err)
	}
}

func TestGenerateDescriptionTrimsOutput(t *testing.T) {
	t.Parallel()

	g := newTestResponder(&fakeChat{content: "  A wonderful place to live.  "})
	got, err := g.GenerateDescription(context.Background(), contractx.Property{Name: "Lakeside Villa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A wonderful place to live." {
		t.Errorf("description = %q", got)
	}
}
