package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"docdesk/internal/apperr"
)

// Envelope types emitted by the processing scripts.
const (
	EnvelopeSuccess  = "success"
	EnvelopeError    = "error"
	EnvelopeProgress = "progress"
)

// Envelope is the final JSON object a script prints on stdout.
// Payload holds the whole object so callers can read operation specific fields.
type Envelope struct {
	Type    string          `json:"type"`
	Message string          `json:"message,omitempty"`
	Payload json.RawMessage `json:"-"`
}

// Decode unmarshals the payload into v.
func (e *Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return apperr.Serialization("dispatch.envelope", err)
	}
	return nil
}

// ParseEnvelope reads the last non-progress line of stdout as an envelope.
// An error envelope becomes an ExecutionFailure; output that is not a JSON
// object is a serialization error.
func ParseEnvelope(op, stdout string) (*Envelope, error) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace([]byte(lines[i]))
		if len(line) == 0 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			return nil, apperr.Serialization(op, err)
		}
		if env.Type == EnvelopeProgress {
			continue
		}
		env.Payload = json.RawMessage(line)

		if env.Type == EnvelopeError {
			msg := env.Message
			if msg == "" {
				msg = "unknown error"
			}
			return nil, apperr.ExecutionFailure(op, 0, msg, nil)
		}
		return &env, nil
	}
	return nil, apperr.Serialization(op, errors.New("no result on stdout"))
}
