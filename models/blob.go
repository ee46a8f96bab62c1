package models

import "time"

// Blob is a stored object addressed by Key.
type Blob struct {
	// Key identifies the object. Keys are opaque to the store; callers may use
	// "/" separated paths and list them by prefix.
	Key string `json:"key"`

	// Data is the raw object content.
	Data []byte `json:"-"`

	// ContentType is the MIME type recorded on create or update. Empty when
	// the caller did not provide one.
	ContentType string `json:"content_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
