package responder

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

const personaTemplate = `You are an experienced real estate agent named %s.
You are professional, knowledgeable, and friendly. Your goal is to help potential clients
find properties that match their needs and schedule viewings when appropriate.

Keep your responses concise but informative. Focus on providing value to the potential client.`

const sentimentSystemPrompt = "You are an AI assistant that analyzes client messages for real estate agents."

const copywriterSystemPrompt = "You are an expert real estate copywriter."

func systemPersona(agentName string, property *contractx.Property, agentContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, personaTemplate, agentName)

	if property != nil {
		fmt.Fprintf(&b, `

You are currently discussing this property:
- Name: %s
- Type: %s
- Price: $%s
- Address: %s
- Features: %s
- Description: %s`,
			property.Name,
			property.Type,
			humanize.Comma(property.Price),
			property.Address,
			property.Features,
			property.Description,
		)
	}

	if agentContext != "" {
		fmt.Fprintf(&b, "\n\nAdditional context: %s", agentContext)
	}
	return b.String()
}

func sentimentPrompt(clientMessage string) string {
	return fmt.Sprintf(`Analyze this message from a potential real estate client:

%q

Provide a JSON response with the following fields:
- sentiment: (positive, neutral, or negative)
- interest_level: (high, medium, or low)
- key_concerns: (list of any concerns mentioned)
- preferences: (list of any preferences mentioned)
- next_action: (what the agent should focus on next)`, clientMessage)
}

func descriptionPrompt(p contractx.Property) string {
	return fmt.Sprintf(`Create an engaging and persuasive description for this property:

Property Type: %s
Price: $%s
Location: %s
Features: %s

The description should highlight the property's best features and appeal to potential buyers.
Keep it concise (100-150 words) but compelling.`,
		p.Type,
		humanize.Comma(p.Price),
		p.Address,
		p.Features,
	)
}
