package callnode

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// ScheduleAppointment books the viewing when the outcome calls for one. The
// simulated client always accepts the first offered slot; the property id is
// carried only on property-flow calls.
func ScheduleAppointment(ctx context.Context, in *CallState, resp contractx.Responder, planner SlotPlanner, ledger Ledger) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}
	if in.Outcome != contractx.OutcomeAppointmentScheduled {
		return in, nil
	}

	offer := planner.Offer(in.Flow)
	confirmation := resp.Respond(ctx, contractx.RespondRequest{
		Stage:    contractx.StageScheduling,
		Client:   in.Client,
		History:  in.History,
		Property: in.Property,
		Offer:    &offer,
	})
	in.History = append(in.History, contractx.Turn{Role: contractx.RoleAgent, Text: confirmation})
	log.Info().Str("call_id", in.CallID).Str("speaker", "agent").Msg(confirmation)

	propertyID := ""
	if in.Flow == contractx.FlowProperty {
		propertyID = in.PropertyID
	}
	apt := ledger.ScheduleAppointment(in.Client, offer.Selected.Date, offer.Selected.Time, propertyID)
	in.Appointment = &apt
	return in, nil
}
