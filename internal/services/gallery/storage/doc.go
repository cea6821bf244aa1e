// Package storage declares persistence interfaces for gallery snapshot data.
//
// Snapshots are a derived copy of upstream API reads and never become the
// source of truth for character records.
package storage
