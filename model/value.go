package model

import (
	"bytes"
	"encoding/json"
)

// An answer value travels as arbitrary JSON and is stored as text. Two
// shapes matter: a plain scalar, and the choice-with-elaboration object
// {"answer": ..., "other": ...} produced by questions with an "Other,
// please specify" slot. This file is the only place that understands the
// stored text representation.

type ValueKind int

const (
	ScalarValue ValueKind = iota
	ChoiceValue
)

// Value is the decoded form of a stored answer value.
type Value struct {
	Kind     ValueKind
	Scalar   any    // payload when Kind == ScalarValue
	Answer   any    // selected choice when Kind == ChoiceValue
	Other    string // elaboration text, meaningful when HasOther
	HasOther bool
}

// AnswerSubmission is one entry of an ingestion batch. Value is kept raw
// until EncodeValue normalizes it.
type AnswerSubmission struct {
	QuestionID   int64           `json:"questionId"`
	QuestionName string          `json:"questionName"`
	Value        json.RawMessage `json:"value"`
}

// EncodeValue normalizes a submitted value to its stored text form: plain
// strings are stored verbatim, everything else as its JSON text.
func EncodeValue(raw json.RawMessage) (string, error) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return "null", nil
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(v), nil
}

// DecodeValue parses stored text back into structured form. A failed parse
// is not fatal: the raw text becomes the literal scalar value and the parse
// error comes back as a warning for the caller to log.
func DecodeValue(stored string) (Value, error) {
	var parsed any
	if err := json.Unmarshal([]byte(stored), &parsed); err != nil {
		return Value{Kind: ScalarValue, Scalar: stored}, err
	}

	if obj, ok := parsed.(map[string]any); ok {
		if answer, found := obj["answer"]; found {
			v := Value{Kind: ChoiceValue, Answer: answer}
			if other, ok := obj["other"].(string); ok && other != "" {
				v.Other = other
				v.HasOther = true
			}
			return v, nil
		}
	}

	return Value{Kind: ScalarValue, Scalar: parsed}, nil
}
