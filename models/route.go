package models

// Route describes a registered route as it appears in the generated
// documentation.
type Route struct {
	// Path is the route pattern, e.g. "/items/{id}".
	Path string `json:"path"`

	// Methods lists the registered HTTP verbs in upper case, sorted.
	Methods []string `json:"methods"`

	// RequireAuth lists the registered verbs guarded by the auth gate.
	RequireAuth []string `json:"require_auth,omitempty"`

	// Summary is an optional one-line description shown on /doc.
	Summary string `json:"summary,omitempty"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
