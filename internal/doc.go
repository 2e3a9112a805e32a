// Package internal implements the HTTP application core behind the public
// mailform API: the App lifecycle, the request Context, routing on top of
// chi, HTTPError and the server runtime with graceful shutdown.
//
// Handlers and middleware only depend on the Context interface, which keeps
// them testable with httptest recorders.
package internal
