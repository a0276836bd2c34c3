package callnode

import (
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// Dial stands in for the telephony collaborator. A real dialer would place
// the call here; the simulation just waits out the connect delay.
func Dial(in *CallState, connectDelay time.Duration) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	log.Info().Str("client", in.Client.Name).Str("phone", in.Client.Phone).Msg("initiating call")
	if connectDelay > 0 {
		time.Sleep(connectDelay)
	}
	log.Info().Msg("call connected")
	return in, nil
}

// OpenCall registers the call with the ledger. A call cannot proceed without
// its record, so this is the one step whose failure is fatal.
func OpenCall(in *CallState, ledger Ledger) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	record := ledger.Open(in.Client)
	in.CallID = record.ID
	return in, nil
}

// ResolveProperty selects the call flow. An unknown or absent property id is
// not an error; the call falls back to a general inquiry.
func ResolveProperty(in *CallState, finder PropertyFinder) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	in.Flow = contractx.FlowGeneral
	if in.PropertyID == "" {
		return in, nil
	}

	property, ok := finder.Find(in.PropertyID)
	if !ok {
		log.Warn().Str("property_id", in.PropertyID).Msg("unknown property id, falling back to general inquiry")
		return in, nil
	}

	in.Flow = contractx.FlowProperty
	in.Property = &property
	return in, nil
}
