// Package repository defines the data access interfaces for rdfview.
//
// Generated graph payloads are persisted so the generator service can
// redirect a browser or a viewer to a stable URL. The actual
// implementation is in the sqlite subpackage.
//
// # Content Ids
//
// A graph id is derived from its JSON payload, so storing the same
// payload twice is a no-op that returns the existing id.
//
// # Testing
//
// The sqlite store is tested with in-memory databases.
package repository
