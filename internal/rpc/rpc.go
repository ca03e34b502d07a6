package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Version is the JSON-RPC protocol version sent with every request.
const Version = "2.0"

// RequestID is the id of every request. Calls are synchronous, so responses
// never need to be correlated.
const RequestID = 1

type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

type Response struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
	ID     json.RawMessage `json:"id"`
}

// Error is the error object reported by the daemon in a response envelope.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError reports a call that never produced a decodable response:
// the request failed, timed out, or the body was not a JSON-RPC envelope.
type TransportError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("rpc %s: status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
