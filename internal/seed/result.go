package seed

import (
	"fmt"

	"wealthview/internal/models"
)

// OutcomeKind classifies what happened to one record of a batch.
type OutcomeKind int

const (
	OutcomeInserted OutcomeKind = iota + 1
	OutcomeSkipped
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInserted:
		return "inserted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one record. Asset is set for
// inserted records and Err for failed ones.
type Outcome struct {
	Kind    OutcomeKind
	AssetID string
	Asset   *models.Asset
	Err     error
}

// Inserted reports a record that was built and staged for commit.
func Inserted(asset *models.Asset) Outcome {
	o := Outcome{Kind: OutcomeInserted, Asset: asset}
	if asset.AssetID != nil {
		o.AssetID = *asset.AssetID
	}
	return o
}

// Skipped reports a record whose natural identifier is already stored.
func Skipped(assetID string) Outcome {
	return Outcome{Kind: OutcomeSkipped, AssetID: assetID}
}

// Failed reports a record that could not be normalized, checked or built.
func Failed(assetID string, err error) Outcome {
	return Outcome{Kind: OutcomeFailed, AssetID: assetID, Err: err}
}

// Describe renders a failed outcome as the line reported in Result.Errors.
func (o Outcome) Describe() string {
	if o.AssetID != "" {
		return fmt.Sprintf("Error processing asset %s: %v", o.AssetID, o.Err)
	}
	return fmt.Sprintf("Error processing asset: %v", o.Err)
}

// Result summarizes one seed run. Every processed record is counted in
// exactly one of Inserted, Skipped or Errors.
type Result struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{Errors: []string{}}
}

// Add folds one record outcome into the summary.
func (r *Result) Add(o Outcome) {
	switch o.Kind {
	case OutcomeInserted:
		r.Inserted++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Errors = append(r.Errors, o.Describe())
	}
}

// Processed returns the number of records accounted for.
func (r *Result) Processed() int {
	return r.Inserted + r.Skipped + len(r.Errors)
}

// Message is the human-readable summary returned to API and CLI callers.
func (r *Result) Message() string {
	switch {
	case r.Inserted > 0:
		return fmt.Sprintf("Successfully seeded %d assets", r.Inserted)
	case r.Skipped > 0:
		return fmt.Sprintf("All %d assets already exist in the database", r.Skipped)
	default:
		return "No assets were processed"
	}
}
