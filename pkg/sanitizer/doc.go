// Package sanitizer cleans user-supplied HTML before it is placed in an email body.
package sanitizer
