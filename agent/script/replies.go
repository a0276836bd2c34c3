package script

import (
	"fmt"
	"strings"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// Client phrasings the canned tables and the property-flow outcome rule key
// on. The property-flow viewing request doubles as the scheduling trigger.
const (
	GeneralReplyHearMore   = "Yes, I'd like to hear more about the properties you have."
	GeneralReplyNotSure    = "I'm not sure if I'm ready to view properties just yet."
	GeneralReplyWhatKind   = "What kind of properties do you have in that area?"
	GeneralReplyWantGarage = "I'm specifically looking for something with a garage."
	PropertyReplyParking   = "That sounds interesting. Is parking included?"
	PropertyReplyHOAFees   = "What are the HOA fees?"
	PropertyReplyTransit   = "Is it close to public transportation?"
	PropertyReplyViewing   = "I'd like to schedule a viewing."
)

// GeneralClientReplies are the simulated client utterances for a general
// inquiry.
func GeneralClientReplies() []string {
	return []string{
		GeneralReplyHearMore,
		GeneralReplyNotSure,
		GeneralReplyWhatKind,
		GeneralReplyWantGarage,
	}
}

// PropertyClientReplies are the simulated client utterances for a property
// inquiry.
func PropertyClientReplies() []string {
	return []string{
		PropertyReplyParking,
		PropertyReplyHOAFees,
		PropertyReplyTransit,
		PropertyReplyViewing,
	}
}

const generalFallback = "I understand. Let me find some properties that would match your needs."

// GeneralReply looks up the canned agent response to a general-inquiry client
// message, with a fixed fallback for unknown phrasings.
func GeneralReply(clientMessage string) string {
	replies := map[string]string{
		GeneralReplyHearMore: "Great! We have several properties that might interest you. " +
			"One of our most popular listings is a modern two-bedroom condo in the heart of downtown. " +
			"It features an open floor plan, high ceilings, and a private balcony with city views. " +
			"It's priced at $650,000.",
		GeneralReplyNotSure: "I completely understand. Would you like me to tell you a bit more " +
			"about the properties we have available in the downtown area? " +
			"This might help you decide if you'd like to schedule a viewing.",
		GeneralReplyWhatKind: "In the downtown area, we have a mix of modern condos, luxury apartments, " +
			"and a few townhouses. Our most popular listing is a two-bedroom condo with an open floor plan " +
			"and city views, priced at $650,000. We also have a three-bedroom townhouse with a rooftop " +
			"terrace for $875,000.",
		GeneralReplyWantGarage: "We do have several properties with garage parking. Our downtown condo " +
			"comes with one dedicated parking space in the secure underground garage. We also have a " +
			"townhouse in the suburban area with a two-car garage, priced at $875,000. " +
			"Would either of these interest you?",
	}
	if reply, ok := replies[clientMessage]; ok {
		return reply
	}
	return generalFallback
}

// PropertyReply looks up the canned agent response to a property-inquiry
// client message, interpolating the listing being discussed.
func PropertyReply(p contractx.Property, clientMessage string) string {
	residential := p.Type == contractx.PropertyResidential

	switch clientMessage {
	case PropertyReplyParking:
		detail := "multiple parking spaces in the private lot"
		if residential {
			detail = "one assigned space in the underground garage"
		}
		return fmt.Sprintf("Yes, the %s comes with dedicated parking. For this specific property, you get %s.", p.Name, detail)

	case PropertyReplyHOAFees:
		fee := "not applicable as this is a commercial property with a different fee structure"
		included := "common area maintenance and security"
		if residential {
			fee = "$450 per month"
			included = "building maintenance, security, and access to amenities like the gym and pool"
		}
		return fmt.Sprintf("The HOA fees for %s are %s. This includes %s.", p.Name, fee, included)

	case PropertyReplyTransit:
		station := "bus stop within walking distance"
		if strings.Contains(p.Address, "Downtown") {
			station = "subway station just two blocks away"
		}
		return fmt.Sprintf("Yes, %s is very conveniently located. There's a %s, and several bus lines run nearby.", p.Name, station)

	case PropertyReplyViewing:
		return "That's great! I'd be happy to arrange that for you. We have availability tomorrow at 2:00 PM " +
			"or Friday at 10:00 AM. Which would work better for your schedule?"
	}

	return fmt.Sprintf("Thank you for your interest in %s. I'll make a note of your question and have our "+
		"property specialist get back to you with more details.", p.Name)
}
