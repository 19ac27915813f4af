package request

import "encoding/json"

// ProcessScanRequest wraps the raw decoded QR payload. The payload field
// stays opaque here: schema checking is the validator's job, not the
// binding layer's, so malformed payloads reach the pipeline and come
// back as categorized Validation errors rather than bare 400s.
type ProcessScanRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}
