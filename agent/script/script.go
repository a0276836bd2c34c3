// Package script holds the fixed call scripts and canned reply tables used
// when no generative backend is available, plus the simulated client replies
// standing in for speech recognition.
package script

import (
	_ "embed"
	"strings"

	"github.com/dustin/go-humanize"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

var (
	//go:embed template/initial_contact.txt
	initialContactRaw string

	//go:embed template/property_details.txt
	propertyDetailsRaw string

	//go:embed template/appointment_scheduling.txt
	appointmentRaw string
)

const defaultAgentName = "Sarah"

// InitialContact renders the cold-call greeting for a general inquiry.
func InitialContact(client contractx.ClientInfo, agentName string) string {
	if strings.TrimSpace(agentName) == "" {
		agentName = defaultAgentName
	}
	interest := client.Interest
	if interest == "" {
		interest = "residential"
	}
	location := client.Location
	if location == "" {
		location = "downtown"
	}

	r := strings.NewReplacer(
		"{client_name}", client.Name,
		"{agent_name}", agentName,
		"{property_type}", interest,
		"{location}", location,
	)
	return strings.TrimSpace(r.Replace(initialContactRaw))
}

// PropertyDetails renders the opening pitch for a specific listing.
func PropertyDetails(p contractx.Property) string {
	r := strings.NewReplacer(
		"{property_name}", p.Name,
		"{property_type}", strings.ToLower(string(p.Type)),
		"{address}", p.Address,
		"{features}", p.Features,
		"{price}", humanize.Comma(p.Price),
		"{description}", p.Description,
	)
	return strings.TrimSpace(r.Replace(propertyDetailsRaw))
}

// AppointmentConfirmation renders the scheduling script, offering two slots
// and confirming the selected one.
func AppointmentConfirmation(option1, option2, selected contractx.SlotOption) string {
	r := strings.NewReplacer(
		"{date_option_1}", option1.Date,
		"{time_option_1}", option1.Time,
		"{date_option_2}", option2.Date,
		"{time_option_2}", option2.Time,
		"{selected_date}", selected.Date,
		"{selected_time}", selected.Time,
	)
	return strings.TrimSpace(r.Replace(appointmentRaw))
}
