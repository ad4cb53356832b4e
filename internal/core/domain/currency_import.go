package domain

// ProviderCurrency is one entry of the provider's currency list.
type ProviderCurrency struct {
	Code   string
	Name   string
	Symbol string
}

// ImportOutcome classifies what happened to a single imported entry.
type ImportOutcome string

const (
	ImportCreated ImportOutcome = "created"
	ImportExists  ImportOutcome = "exists"
	ImportInvalid ImportOutcome = "invalid"
	ImportFailed  ImportOutcome = "failed"
)

// ImportEntry is one report line of an import run.
type ImportEntry struct {
	Code    string        `json:"code"`
	Outcome ImportOutcome `json:"outcome"`
	Message string        `json:"message"`
}

// ImportReport summarises an import run.
type ImportReport struct {
	Entries []ImportEntry `json:"entries"`
	// Failure is set when the currency list could not be fetched at all.
	Failure string `json:"failure,omitempty"`
}

// Count returns how many entries ended with the given outcome.
func (r *ImportReport) Count(outcome ImportOutcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}
