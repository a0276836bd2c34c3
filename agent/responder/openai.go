package responder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
	openaix "github.com/teerapat/estate-call-agent/pkg/openaix"
)

// FallbackApology is spoken verbatim whenever the generation backend fails.
// A client-facing call never observes an error.
const FallbackApology = "I apologize, but I'm having trouble generating a response right now. " +
	"Let me connect you with a human agent who can assist you further."

// completionClient is the slice of the OpenAI SDK the responder uses.
type completionClient interface {
	New(ctx context.Context, body openaisdk.ChatCompletionNewParams, opts ...option.RequestOption) (*openaisdk.ChatCompletion, error)
}

// OpenAI produces utterances and sentiment assessments through the chat
// completions API.
type OpenAI struct {
	chat      completionClient
	model     shared.ChatModel
	agentName string
	timeout   time.Duration
}

var (
	_ contractx.Responder            = (*OpenAI)(nil)
	_ contractx.SentimentAnalyzer    = (*OpenAI)(nil)
	_ contractx.DescriptionGenerator = (*OpenAI)(nil)
)

// NewOpenAI wraps an SDK client built by pkg/openaix.
func NewOpenAI(client *openaisdk.Client, cfg openaix.Config) *OpenAI {
	return newOpenAI(&client.Chat.Completions, cfg)
}

func newOpenAI(chat completionClient, cfg openaix.Config) *OpenAI {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openaisdk.ChatModelGPT4o
	}
	agentName := strings.TrimSpace(cfg.AgentName)
	if agentName == "" {
		agentName = "Sarah"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAI{
		chat:      chat,
		model:     model,
		agentName: agentName,
		timeout:   timeout,
	}
}

// Respond generates the next agent utterance. Backend failure, timeout, or
// an empty completion all degrade to the fixed apology string.
func (g *OpenAI) Respond(ctx context.Context, req contractx.RespondRequest) string {
	clientMessage, agentContext := g.stageMessage(req)

	messages := []openaisdk.ChatCompletionMessageParamUnion{
		openaisdk.SystemMessage(systemPersona(g.agentName, req.Property, agentContext)),
	}
	for _, turn := range req.History {
		if turn.Role == contractx.RoleAgent {
			messages = append(messages, openaisdk.AssistantMessage(turn.Text))
		} else {
			messages = append(messages, openaisdk.UserMessage(turn.Text))
		}
	}
	messages = append(messages, openaisdk.UserMessage(clientMessage))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.chat.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:            g.model,
		Messages:         messages,
		Temperature:      openaisdk.Float(0.7),
		MaxTokens:        openaisdk.Int(300),
		TopP:             openaisdk.Float(0.9),
		FrequencyPenalty: openaisdk.Float(0),
		PresencePenalty:  openaisdk.Float(0.6),
	})
	if err != nil {
		log.Warn().Err(err).Msg("response generation failed, using fallback")
		return FallbackApology
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Warn().Msg("response generation returned no content, using fallback")
		return FallbackApology
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// stageMessage derives the prompt for stages where the client has not
// literally spoken, mirroring how a human operator would brief the model.
func (g *OpenAI) stageMessage(req contractx.RespondRequest) (clientMessage, agentContext string) {
	switch req.Stage {
	case contractx.StageOpening:
		if req.Property != nil {
			p := req.Property
			return "Tell me about this property.",
				fmt.Sprintf("You are discussing the %s property with a potential client. This is a %s property priced at $%d, located at %s. It features %s.",
					p.Name, strings.ToLower(string(p.Type)), p.Price, p.Address, p.Features)
		}
		interest := req.Client.Interest
		if interest == "" {
			interest = "residential"
		}
		location := req.Client.Location
		if location == "" {
			location = "downtown"
		}
		return "Generate an initial greeting for a cold call to a potential real estate client.",
			fmt.Sprintf("You are making an initial call to %s who has expressed interest in %s properties in the %s area.",
				req.Client.Name, interest, location)

	case contractx.StageScheduling:
		if req.Offer == nil {
			return req.ClientMessage, req.AgentContext
		}
		return "I'd like to schedule a viewing.",
			fmt.Sprintf("You need to schedule a viewing appointment. Offer these options: %s at %s or %s at %s. The client has selected %s at %s; confirm the appointment and provide next steps.",
				req.Offer.Option1.Date, req.Offer.Option1.Time,
				req.Offer.Option2.Date, req.Offer.Option2.Time,
				req.Offer.Selected.Date, req.Offer.Selected.Time)
	}
	return req.ClientMessage, req.AgentContext
}

// AssessSentiment judges a client message, returning the documented default
// on any backend failure or malformed output.
func (g *OpenAI) AssessSentiment(ctx context.Context, clientMessage string) contractx.SentimentAssessment {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.chat.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(sentimentSystemPrompt),
			openaisdk.UserMessage(sentimentPrompt(clientMessage)),
		},
		Temperature: openaisdk.Float(0.3),
		MaxTokens:   openaisdk.Int(300),
		ResponseFormat: openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("sentiment analysis failed, using default assessment")
		return contractx.DefaultAssessment()
	}
	if len(resp.Choices) == 0 {
		log.Warn().Msg("sentiment analysis returned no content, using default assessment")
		return contractx.DefaultAssessment()
	}

	assessment, err := parseAssessment(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn().Err(err).Msg("sentiment analysis unparsable, using default assessment")
		return contractx.DefaultAssessment()
	}
	return assessment
}

// parseAssessment decodes the model's JSON judgment, tolerating markdown
// code fences around the payload.
func parseAssessment(content string) (contractx.SentimentAssessment, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw struct {
		Sentiment     string   `json:"sentiment"`
		InterestLevel string   `json:"interest_level"`
		KeyConcerns   []string `json:"key_concerns"`
		Preferences   []string `json:"preferences"`
		NextAction    string   `json:"next_action"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return contractx.SentimentAssessment{}, fmt.Errorf("%w: %v", contractx.ErrSchemaViolation, err)
	}

	sentiment := contractx.Sentiment(strings.ToLower(strings.TrimSpace(raw.Sentiment)))
	switch sentiment {
	case contractx.SentimentPositive, contractx.SentimentNeutral, contractx.SentimentNegative:
	default:
		return contractx.SentimentAssessment{}, fmt.Errorf("%w: sentiment %q", contractx.ErrSchemaViolation, raw.Sentiment)
	}

	interest := contractx.InterestLevel(strings.ToLower(strings.TrimSpace(raw.InterestLevel)))
	switch interest {
	case contractx.InterestHigh, contractx.InterestMedium, contractx.InterestLow:
	default:
		return contractx.SentimentAssessment{}, fmt.Errorf("%w: interest_level %q", contractx.ErrSchemaViolation, raw.InterestLevel)
	}

	if raw.KeyConcerns == nil {
		raw.KeyConcerns = []string{}
	}
	if raw.Preferences == nil {
		raw.Preferences = []string{}
	}

	return contractx.SentimentAssessment{
		Sentiment:     sentiment,
		InterestLevel: interest,
		KeyConcerns:   raw.KeyConcerns,
		Preferences:   raw.Preferences,
		NextAction:    strings.TrimSpace(raw.NextAction),
	}, nil
}

// GenerateDescription writes marketing copy for a listing. Unlike Respond it
// surfaces errors; the catalog treats them as a cue to keep the original
// description.
func (g *OpenAI) GenerateDescription(ctx context.Context, p contractx.Property) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.chat.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(copywriterSystemPrompt),
			openaisdk.UserMessage(descriptionPrompt(p)),
		},
		Temperature: openaisdk.Float(0.7),
		MaxTokens:   openaisdk.Int(200),
	})
	if err != nil {
		return "", fmt.Errorf("%w: generate description: %v", contractx.ErrBackendInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: generate description returned no choices", contractx.ErrBackendInvoke)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
