// Package htmx provides the small slice of HTMX support the form needs:
// request detection and response headers that steer the client-side swap.
//
// Use IsHTMX to decide between a fragment and a full page:
//
//	if htmx.IsHTMX(r) {
//		// render only the form fragment
//	}
//
// Render options set response headers for HTMX requests only:
//
//	c.Render(http.StatusOK, views.EmailForm(f),
//		htmx.WithTrigger("email-sent"),
//		htmx.WithPushURL("false"),
//	)
package htmx
