// Package handlers wires the email form and the dispatch endpoint into the app.
//
//	GET  /                form page
//	POST /                form submit (htmx fragment or full page)
//	POST /api/send-email  dispatch endpoint
//
// ErrorHandler renders every handler error as JSON.
package handlers
