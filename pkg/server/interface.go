/*
Package server implements msgpack IPC for the product suggestion engine.

The server provides a minimal request/response surface over stdin/stdout
using binary msgpack encoding. Messages are processed synchronously in one
loop, which is also what serializes access to the engine's user-owned
stores: there are never two requests in flight.

# IPC

Each request carries an ID, a command, and the fields that command needs.
A suggestion request:

	{"id": "req_001", "cmd": "suggest", "q": "mil", "lang": "en", "l": 6}

The server responds with ranked suggestions and timing info:

	{"id": "req_001", "s": [{"n": "milk", "cat": "dairy", "sc": 0.95, "why": "fuzzy", "r": 1}], "c": 1, "t": 120}

The learn command feeds the usage history write path:

	{"id": "req_002", "cmd": "learn", "name": "oat milk", "lang": "en"}

History maintenance uses the history_* commands for export, wholesale
import, and the eviction pass. Learned products are managed through
product_add, product_find and product_increment.

Unknown commands and malformed payloads produce an error response with a
400-style code; the engine itself never errors for normal operation.
*/
package server

import "github.com/bastiangx/shelfserve/pkg/history"

// Request is the single envelope for all commands.
type Request struct {
	ID       string                   `msgpack:"id"`
	Cmd      string                   `msgpack:"cmd"`
	Query    string                   `msgpack:"q,omitempty"`
	Name     string                   `msgpack:"name,omitempty"`
	Category string                   `msgpack:"cat,omitempty"`
	Lang     string                   `msgpack:"lang,omitempty"`
	Limit    int                      `msgpack:"l,omitempty"`
	Entries  map[string]history.Entry `msgpack:"entries,omitempty"`
}

// ResponseSuggestion is one ranked suggestion on the wire.
type ResponseSuggestion struct {
	Name     string  `msgpack:"n"`
	Category string  `msgpack:"cat"`
	Score    float64 `msgpack:"sc"`
	Reason   string  `msgpack:"why"`
	Rank     uint16  `msgpack:"r"`
}

// SuggestResponse answers suggest and popular commands.
type SuggestResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"` // microseconds
}

// StatusResponse answers commands that only succeed or fail.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// HistoryResponse answers the history_* commands.
type HistoryResponse struct {
	ID      string                   `msgpack:"id"`
	Status  string                   `msgpack:"status"`
	Entries map[string]history.Entry `msgpack:"entries,omitempty"`
	Evicted int                      `msgpack:"evicted,omitempty"`
}

// ProductResponse answers the product_* commands.
type ProductResponse struct {
	ID      string                  `msgpack:"id"`
	Status  string                  `msgpack:"status"`
	Product *history.LearnedProduct `msgpack:"product,omitempty"`
	Found   bool                    `msgpack:"found"`
}

// StatsResponse answers the stats command.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse reports a malformed or unknown request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
