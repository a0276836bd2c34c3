package schedule

import (
	"math/rand"
	"testing"
	"time"

	contractx "github.com/teerapat/estate-call-agent/agent/contract"
)

func fixedClock() func() time.Time {
	// A Tuesday near the end of a month, so AddDate has to roll over.
	base := time.Date(2025, time.June, 30, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return base }
}

func TestCandidateDatesStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	p := NewPlanner(fixedClock(), rand.New(rand.NewSource(1)))
	dates := p.CandidateDates(3)

	want := []string{"Monday, June 30", "Tuesday, July 01", "Wednesday, July 02"}
	for i, w := range want {
		if dates[i] != w {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], w)
		}
	}
}

func TestGeneralOfferOptionsAreDistinct(t *testing.T) {
	t.Parallel()

	p := NewPlanner(fixedClock(), rand.New(rand.NewSource(3)))
	for i := 0; i < 200; i++ {
		offer := p.Offer(contractx.FlowGeneral)
		if offer.Option1 == offer.Option2 {
			t.Fatalf("identical offered options: %+v", offer.Option1)
		}
		if offer.Option1.Date == offer.Option2.Date && offer.Option1.Time == offer.Option2.Time {
			t.Fatalf("offer collides on both fields: %+v", offer)
		}
		if offer.Selected != offer.Option1 {
			t.Fatalf("selected slot %+v is not the first option %+v", offer.Selected, offer.Option1)
		}
	}
}

func TestPropertyOfferSelectsAfternoonOfDayOne(t *testing.T) {
	t.Parallel()

	p := NewPlanner(fixedClock(), rand.New(rand.NewSource(4)))
	offer := p.Offer(contractx.FlowProperty)

	if offer.Selected.Date != "Monday, June 30" {
		t.Errorf("selected date = %q, want today", offer.Selected.Date)
	}
	if offer.Selected.Time != "2:00 PM" {
		t.Errorf("selected time = %q, want 2:00 PM", offer.Selected.Time)
	}
	if offer.Option1 == offer.Option2 {
		t.Errorf("identical property options: %+v", offer)
	}
}
