// Package schedule computes candidate viewing slots for appointment
// scheduling.
package schedule

import (
	"math/rand"
	"time"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

// dateLayout renders dates like "Monday, January 02".
const dateLayout = "Monday, January 02"

var (
	generalTimes  = []string{"10:00 AM", "1:00 PM", "3:30 PM", "5:00 PM"}
	propertyTimes = []string{"10:00 AM", "2:00 PM"}
)

// Planner selects viewing slot options. Clock and random source are
// injectable so tests get reproducible offers.
type Planner struct {
	now func() time.Time
	r   *rand.Rand
}

// NewPlanner builds a planner; nil arguments fall back to the wall clock and
// a time-seeded source.
func NewPlanner(now func() time.Time, r *rand.Rand) *Planner {
	if now == nil {
		now = time.Now
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{now: now, r: r}
}

// CandidateDates returns n strictly increasing calendar days starting today,
// formatted for reading aloud.
func (p *Planner) CandidateDates(n int) []string {
	today := p.now()
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// Offer returns two distinct slot options for the flow and marks the first
// as the client's simulated selection. General inquiries draw from three
// days and four times; property viewings from two days and two times, with
// the afternoon slot of day one selected, matching the scripted dialogue.
func (p *Planner) Offer(flow contractx.Flow) contractx.ScheduleOffer {
	if flow == contractx.FlowProperty {
		dates := p.CandidateDates(2)
		offer := contractx.ScheduleOffer{
			Option1: contractx.SlotOption{Date: dates[0], Time: propertyTimes[1]},
			Option2: contractx.SlotOption{Date: dates[1], Time: propertyTimes[0]},
		}
		offer.Selected = offer.Option1
		return offer
	}

	dates := p.CandidateDates(3)
	date1 := dates[p.r.Intn(len(dates))]
	time1 := generalTimes[p.r.Intn(len(generalTimes))]
	date2 := pickOther(p.r, dates, date1)
	time2 := pickOther(p.r, generalTimes, time1)

	offer := contractx.ScheduleOffer{
		Option1: contractx.SlotOption{Date: date1, Time: time1},
		Option2: contractx.SlotOption{Date: date2, Time: time2},
	}
	offer.Selected = offer.Option1
	return offer
}

// pickOther draws uniformly from pool excluding the already chosen value, so
// the two offered options never collide on both fields.
func pickOther(r *rand.Rand, pool []string, chosen string) string {
	others := make([]string, 0, len(pool)-1)
	for _, v := range pool {
		if v != chosen {
			others = append(others, v)
		}
	}
	return others[r.Intn(len(others))]
}
