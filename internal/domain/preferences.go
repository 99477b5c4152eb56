package domain

import "fmt"

// UserPreferences is the structured preference profile one recommendation
// request is scored against. AdditionalDetails is carried through untouched;
// scoring does not read it.
type UserPreferences struct {
	Age               int          `json:"age"`
	Relationship      Relationship `json:"relationship"`
	Interests         []Interest   `json:"interests"`
	AdditionalDetails string       `json:"additionalDetails,omitempty"`
	BudgetRange       BudgetRange  `json:"budgetRange"`
	Occasion          Occasion     `json:"occasion"`
}

// Validate checks that the profile only carries known enum members. The
// recommendation engine assumes a valid profile; callers that build profiles
// from raw input must validate (or parse via the Parse* functions, which are
// total) before handing the profile to the engine.
func (p *UserPreferences) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil preferences", ErrInvalidPreferences)
	}
	if p.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0, got %d", ErrInvalidPreferences, p.Age)
	}
	if !knownRelationships[p.Relationship] {
		return fmt.Errorf("%w: unknown relationship %q", ErrInvalidPreferences, p.Relationship)
	}
	if !knownBudgetRanges[p.BudgetRange] {
		return fmt.Errorf("%w: unknown budget range %q", ErrInvalidPreferences, p.BudgetRange)
	}
	if !knownOccasions[p.Occasion] {
		return fmt.Errorf("%w: unknown occasion %q", ErrInvalidPreferences, p.Occasion)
	}
	for _, interest := range p.Interests {
		if !knownInterests[interest] {
			return fmt.Errorf("%w: unknown interest %q", ErrInvalidPreferences, interest)
		}
	}
	return nil
}
