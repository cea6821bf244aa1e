// Package gallery hosts the browser-facing character gallery service.
//
// Requests are served per route: the gallery listing at "/", one detail
// page per character under "/character/{id}", a health probe and the
// embedded static assets. Every request builds its own views over the
// shared character API client, so no display state outlives a request.
package gallery
