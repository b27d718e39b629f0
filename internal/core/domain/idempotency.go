package domain

import "time"

// IdempotencyWindow is how long a stored response answers repeats of its
// key. After it passes, the key may be used for a new request.
const IdempotencyWindow = 24 * time.Hour

// IdempotencyLog represents a cached response for a payment-bearing request.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "principal:scope:idempotency_key"
	StatusCode   int       `json:"status_code"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to replay
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format.
func BuildIdempotencyKey(principal Address, scope, key string) string {
	return principal.String() + ":" + scope + ":" + key
}
