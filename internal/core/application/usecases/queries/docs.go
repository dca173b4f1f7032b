// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database with GORM and return read models
// shaped for the HTTP responses; they never load aggregates for writing.
package queries
