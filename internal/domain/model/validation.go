package model

import "strings"

// FieldError describes a single invalid request field. The wire shape
// (loc/msg/type) matches what the web client's error alert flattens.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError aggregates field errors for one request.
type ValidationError struct {
	Fields []FieldError
}

// Error implements error by joining field messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = strings.Join(f.Loc, ".") + ": " + f.Msg
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error and returns the receiver for chaining.
func (e *ValidationError) Add(loc, msg, typ string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Loc: []string{"body", loc}, Msg: msg, Type: typ})
	return e
}

// OrNil returns nil when no field errors were recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
