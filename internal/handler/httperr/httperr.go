package httperr

// Response is the body emitted for recovered panics. Normal error paths
// answer with flat {"error": "..."} objects directly from the handlers.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
