// Package todo implements the anti-corruption layer translators for the
// backend's todo documents.
package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// TodoDTO matches a todo document as the backend serializes it.
type TodoDTO struct {
	ID       DocumentID `json:"_id"`
	Owner    string     `json:"owner"`
	Status   bool       `json:"status"`
	Body     string     `json:"body"`
	Category string     `json:"category"`
}

// NewTodoRequestDTO is the body of POST <collection>/new.
type NewTodoRequestDTO struct {
	Owner    string `json:"owner"`
	Status   bool   `json:"status"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// DocumentID is a backend document identifier. It decodes from a plain JSON
// string or from an extended-JSON object id ({"$oid": "..."}).
type DocumentID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = DocumentID(s)
		return nil
	}

	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &oid); err != nil {
		return fmt.Errorf("decoding document id: %w", err)
	}
	if oid.OID == "" {
		return errors.New("decoding document id: object has no $oid")
	}
	*id = DocumentID(oid.OID)
	return nil
}

// String returns the identifier text.
func (id DocumentID) String() string {
	return string(id)
}

// newIDEnvelope covers the object shapes a create response may take.
type newIDEnvelope struct {
	ID    *DocumentID `json:"id"`
	UID   *DocumentID `json:"_id"`
	OID   string      `json:"$oid"`
	Value *DocumentID `json:"value"`
}

// DecodeNewID extracts the identifier from a create response body. The
// backend may answer with a JSON string, an object carrying id, _id or $oid
// (nested {"_id":{"$oid":...}} included), or the bare id as text.
func DecodeNewID(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", errors.New("empty create response")
	}

	switch body[0] {
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return "", fmt.Errorf("decoding create response: %w", err)
		}
		if s == "" {
			return "", errors.New("create response carries an empty id")
		}
		return s, nil

	case '{':
		var env newIDEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return "", fmt.Errorf("decoding create response: %w", err)
		}
		for _, candidate := range []*DocumentID{env.ID, env.UID, env.Value} {
			if candidate != nil && *candidate != "" {
				return candidate.String(), nil
			}
		}
		if env.OID != "" {
			return env.OID, nil
		}
		return "", errors.New("create response object has no id")

	default:
		if bytes.ContainsAny(body, " \t\r\n{}[]<>") {
			return "", fmt.Errorf("create response is not an id: %q", truncate(body))
		}
		return string(body), nil
	}
}

func truncate(b []byte) string {
	const limit = 64
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
