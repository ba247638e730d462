package types

// APIResponse is the uniform envelope returned by the kiosk API server.
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// OK reports whether the server accepted the request.
func (r *APIResponse[T]) OK() bool {
	return r.Code == "SUCCESS" || r.Code == "CREATED"
}
