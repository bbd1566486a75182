package store

import "encoding/json"

// Command is one entry of a namespace's append-only log. A namespace file is
// a sequence of JSON commands; replaying them in order rebuilds the records
// and their locations.
type Command struct {
	Name      string          `json:"name"`
	Uuid      string          `json:"uuid"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}
