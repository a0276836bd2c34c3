package contract

import "testing"

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeAppointmentScheduled, "Appointment scheduled"},
		{OutcomeInformationProvided, "Information Provided"},
		{OutcomeFollowUpRequired, "Follow Up Required"},
		{OutcomeNotInterested, "Not Interested"},
	}
	for _, tc := range cases {
		if got := tc.outcome.Label(); got != tc.want {
			t.Errorf("Label(%s) = %q, want %q", tc.outcome, got, tc.want)
		}
	}
}

func TestDefaultAssessment(t *testing.T) {
	t.Parallel()

	got := DefaultAssessment()
	if got.Sentiment != SentimentNeutral {
		t.Errorf("sentiment = %s, want neutral", got.Sentiment)
	}
	if got.InterestLevel != InterestMedium {
		t.Errorf("interest_level = %s, want medium", got.InterestLevel)
	}
	if got.KeyConcerns == nil || len(got.KeyConcerns) != 0 {
		t.Errorf("key_concerns = %v, want empty non-nil", got.KeyConcerns)
	}
	if got.Preferences == nil || len(got.Preferences) != 0 {
		t.Errorf("preferences = %v, want empty non-nil", got.Preferences)
	}
	if got.NextAction != "ask_follow_up_questions" {
		t.Errorf("next_action = %q", got.NextAction)
	}
}
