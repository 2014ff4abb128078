// Package report provides the shared JSON report envelope used by every
// agentkit subcommand: stable IDs, ISO timestamps, and indented output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh report identifier.
func NewID() string {
	return uuid.NewString()
}

// Timestamp returns the analyzedAt value for report envelopes.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// Print writes v as indented JSON followed by a newline, matching the
// two-space indent every report consumer expects.
func Print(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Error is the shared failure envelope. success is always false.
type Error struct {
	Success    bool   `json:"success"`
	Err        string `json:"error"`
	AnalyzedAt string `json:"analyzedAt"`
}

// NewError builds a failure envelope with the current timestamp.
func NewError(message string) Error {
	return Error{Success: false, Err: message, AnalyzedAt: Timestamp()}
}
