// Package characterapi is the HTTP client for the upstream character API.
//
// The client issues plain GET requests, decodes JSON and classifies failures.
// It never retries. Callers decide how a failure is shown.
package characterapi
