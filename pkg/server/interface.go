/*
Package server implements msgpack IPC for the search index.

The server is the thin adapter between a client process (an editor plugin, a
UI widget, a test harness) and the in-process index: requests arrive on
stdin, responses leave on stdout, and every request translates into one call
on the index. Messages are processed synchronously in arrival order, which
also satisfies the index's single-writer discipline for the mutating ops.

# IPC

Each request carries an ID echoed in the response, an op, and op-specific
fields:

	{"id": "req_001", "op": "search", "q": "william ru", "l": 10}
	{"id": "req_002", "op": "autocomplete", "q": "norman c"}
	{"id": "req_003", "op": "insert", "k": "2", "s": ["William the Conqueror"]}
	{"id": "req_004", "op": "remove", "k": "2"}
	{"id": "req_005", "op": "live", "q": "william ru"}
	{"id": "req_006", "op": "dump"}
	{"id": "req_007", "op": "health"}

"search" uses the configured search type; "live" forces a live-typing search
regardless of configuration, which is how foreign query protocols should be
translated. "insert" carries the record's extracted strings; the server
retains them so that "remove" can re-derive the identical keyword set later.

Responses carry matched keys or completed query strings plus timing:

	{"id": "req_001", "keys": ["3"], "c": 1, "t": 120}
	{"id": "req_002", "opts": ["norman conqueror"], "c": 1, "t": 87}

Empty results are normal responses, not errors; error responses are reserved
for malformed requests and unknown ops.
*/
package server

// Request is an incoming IPC request.
type Request struct {
	ID      string   `msgpack:"id"`
	Op      string   `msgpack:"op"`
	Query   string   `msgpack:"q,omitempty"`
	Limit   int      `msgpack:"l,omitempty"`
	Key     string   `msgpack:"k,omitempty"`
	Strings []string `msgpack:"s,omitempty"`
}

// SearchResponse carries matched record keys.
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Keys      []string `msgpack:"keys"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// AutocompleteResponse carries completed query strings.
type AutocompleteResponse struct {
	ID        string   `msgpack:"id"`
	Options   []string `msgpack:"opts"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse acknowledges mutations and health checks.
type StatusResponse struct {
	ID       string `msgpack:"id"`
	Status   string `msgpack:"status"`
	Keywords int    `msgpack:"kw,omitempty"`
}

// ErrorResponse reports a malformed or unknown request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
