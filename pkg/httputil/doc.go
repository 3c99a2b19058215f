// Package httputil provides JSON helpers for the stackcheck HTTP API.
//
// # Responses
//
// [WriteJSON] encodes a value with a status code. [WriteError] maps a
// coded error from pkg/errors to an HTTP status and writes it as
//
//	{"code": "INVALID_INPUT", "error": "container 3: ship id -1 is negative"}
//
// Deadline errors become 503 TIMEOUT responses, so a client can tell a
// check that did not finish from a rejected candidate.
//
// # Requests
//
// [DecodeJSON] reads exactly one JSON object with unknown fields rejected
// and the body size bounded.
//
// # Status Recording
//
// [StatusWriter] remembers the status code and size of a response for
// logging and metrics middleware.
package httputil
