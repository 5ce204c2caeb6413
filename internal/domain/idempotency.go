package domain

import "encoding/json"

// IdempotencyRecord is the stored outcome of a request made with an
// idempotency key. RequestHash identifies the request body the key was first
// used with.
type IdempotencyRecord struct {
	RequestHash string          `json:"request_hash"`
	Payload     json.RawMessage `json:"payload"`
}
