// Package crm is the in-memory ledger of call records and appointments.
package crm

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// Ledger stores call records and appointments for the process lifetime.
// Each call has a single logical writer, but the ledger itself supports
// multiple concurrently open calls.
type Ledger struct {
	mu           sync.Mutex
	calls        map[string]*contractx.CallRecord
	callOrder    []string
	appointments []contractx.Appointment

	now func() time.Time
}

// Option customizes the ledger.
type Option func(*Ledger)

// WithClock injects the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLedger builds an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		calls: make(map[string]*contractx.CallRecord),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// newID combines a unix timestamp with a uuid fragment so ids stay unique
// even when several records are created within the same clock tick.
func (l *Ledger) newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, l.now().Unix(), suffix)
}

// Open creates an in-progress call record for the client and returns a copy.
func (l *Ledger) Open(client contractx.ClientInfo) contractx.CallRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := &contractx.CallRecord{
		ID:        l.newID("call"),
		Client:    client,
		StartTime: l.now(),
		Status:    contractx.CallInProgress,
	}
	l.calls[record.ID] = record
	l.callOrder = append(l.callOrder, record.ID)

	log.Info().Str("call_id", record.ID).Str("client", client.Name).Msg("call logged in crm")
	return copyRecord(record)
}

// AppendNote adds a timestamped note. An unknown call id is a logged no-op.
func (l *Ledger) AppendNote(callID, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.calls[callID]
	if !ok {
		log.Warn().Str("call_id", callID).Msg("append note: unknown call id, ignoring")
		return
	}
	record.Notes = append(record.Notes, contractx.Note{
		Timestamp: l.now(),
		Content:   content,
	})
	log.Debug().Str("call_id", callID).Msg("notes added to call")
}

// SetSentiment stores the sentiment assessment on the call record. An
// unknown call id is a logged no-op.
func (l *Ledger) SetSentiment(callID string, assessment contractx.SentimentAssessment) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.calls[callID]
	if !ok {
		log.Warn().Str("call_id", callID).Msg("set sentiment: unknown call id, ignoring")
		return
	}
	record.Sentiment = &assessment
	log.Debug().Str("call_id", callID).Msg("sentiment analysis added to call")
}

// SetOutcome records the outcome label. An unknown call id is a logged
// no-op.
func (l *Ledger) SetOutcome(callID, outcome string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.calls[callID]
	if !ok {
		log.Warn().Str("call_id", callID).Msg("set outcome: unknown call id, ignoring")
		return
	}
	record.Outcome = outcome
	log.Info().Str("call_id", callID).Str("outcome", outcome).Msg("call outcome updated")
}

// Close stamps the end time, marks the record completed, and computes the
// duration as minutes:seconds. Closing an already completed call is a no-op
// returning the record as closed the first time.
func (l *Ledger) Close(callID string) (contractx.CallRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.calls[callID]
	if !ok {
		return contractx.CallRecord{}, fmt.Errorf("%w: %s", contractx.ErrUnknownCall, callID)
	}
	if record.Status == contractx.CallCompleted {
		return copyRecord(record), nil
	}

	end := l.now()
	record.EndTime = &end
	record.Status = contractx.CallCompleted

	seconds := int(end.Sub(record.StartTime).Seconds())
	record.Duration = fmt.Sprintf("%d:%02d", seconds/60, seconds%60)

	log.Info().Str("call_id", callID).Str("duration", record.Duration).Msg("call completed")
	return copyRecord(record), nil
}

// ScheduleAppointment records a viewing. propertyID is empty for a general
// inquiry.
func (l *Ledger) ScheduleAppointment(client contractx.ClientInfo, date, timeOfDay, propertyID string) contractx.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()

	apt := contractx.Appointment{
		ID:         l.newID("apt"),
		Client:     client,
		Date:       date,
		Time:       timeOfDay,
		PropertyID: propertyID,
		Status:     "scheduled",
		CreatedAt:  l.now(),
	}
	l.appointments = append(l.appointments, apt)

	log.Info().
		Str("appointment_id", apt.ID).
		Str("client", client.Name).
		Str("date", date).
		Str("time", timeOfDay).
		Msg("appointment scheduled")
	return apt
}

// Call returns a copy of one call record.
func (l *Ledger) Call(callID string) (contractx.CallRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.calls[callID]
	if !ok {
		return contractx.CallRecord{}, false
	}
	return copyRecord(record), true
}

// CallHistory returns call records in open order, filtered by client id when
// one is given.
func (l *Ledger) CallHistory(clientID string) []contractx.CallRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]contractx.CallRecord, 0, len(l.callOrder))
	for _, id := range l.callOrder {
		record := l.calls[id]
		if clientID != "" && record.Client.ID != clientID {
			continue
		}
		out = append(out, copyRecord(record))
	}
	return out
}

// Appointments returns appointments in creation order, filtered by client id
// when one is given.
func (l *Ledger) Appointments(clientID string) []contractx.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]contractx.Appointment, 0, len(l.appointments))
	for _, apt := range l.appointments {
		if clientID != "" && apt.Client.ID != clientID {
			continue
		}
		out = append(out, apt)
	}
	return out
}

// copyRecord deep-copies the mutable fields so callers cannot alias ledger
// state.
func copyRecord(r *contractx.CallRecord) contractx.CallRecord {
	out := *r
	out.Notes = append([]contractx.Note(nil), r.Notes...)
	if r.EndTime != nil {
		end := *r.EndTime
		out.EndTime = &end
	}
	if r.Sentiment != nil {
		s := *r.Sentiment
		s.KeyConcerns = append([]string(nil), r.Sentiment.KeyConcerns...)
		s.Preferences = append([]string(nil), r.Sentiment.Preferences...)
		out.Sentiment = &s
	}
	return out
}
