package htmx

import "net/http"

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// Target returns the id of the element targeted by an HTMX request.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
