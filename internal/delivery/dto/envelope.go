// Package dto defines the wire-level request and response shapes for
// the HTTP and WebSocket surfaces, separate from the internal
// gamestate types they are built from.
package dto

// Envelope is the response shape every HTTP endpoint returns, per
// spec.md §6: {success, message?, data?, error?}.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable error code alongside the
// human-readable message.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Ok wraps a successful payload.
func Ok(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OkMessage wraps a successful response carrying only a message, no
// data payload.
func OkMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail wraps a failed response.
func Fail(kind, code, message string) Envelope {
	return Envelope{Success: false, Error: &ErrorBody{Kind: kind, Code: code, Message: message}}
}
