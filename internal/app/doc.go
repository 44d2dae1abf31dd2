// Package app provides the application service layer.
//
// Orchestrates use cases: candidate listing, like toggling, browser like
// lookups, analytics snapshots, admin candidate management. Sits between HTTP
// handlers and domain repositories. Depends on domain interfaces, not concrete
// implementations.
package app
