package callnode

// CloseCall records the outcome label and completes the call record. The
// ledger stamps the end time and computes the duration.
func CloseCall(in *CallState, ledger Ledger) (*CallState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	ledger.SetOutcome(in.CallID, in.Outcome.Label())

	record, err := ledger.Close(in.CallID)
	if err != nil {
		return nil, err
	}
	in.Record = record
	return in, nil
}

// Finalize shapes the graph output.
func Finalize(in *CallState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, ErrNilState
	}
	return GraphOutput{
		CallID:       in.CallID,
		Outcome:      in.Outcome,
		OutcomeLabel: in.Outcome.Label(),
		Duration:     in.Record.Duration,
	}, nil
}
