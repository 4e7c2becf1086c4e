// Package report serializes the analysis result to the primary output
// channel. Exactly one JSON record is written per invocation: the metrics
// report on success, or a single-field error record on top-level failure.
package report

import (
	"encoding/json"
	"io"

	"vibescan/internal/engine/score"
)

// ErrorRecord is the shape of the top-level failure output.
type ErrorRecord struct {
	Error string `json:"error"`
}

func WriteJSON(w io.Writer, r score.Report) error {
	return json.NewEncoder(w).Encode(r)
}

func WriteError(w io.Writer, message string) error {
	return json.NewEncoder(w).Encode(ErrorRecord{Error: message})
}
