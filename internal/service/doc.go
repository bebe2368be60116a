// Package service implements business logic for rdfview.
//
// GraphService turns triples text into node/link payloads, stores them
// through a repository.GraphStore, and exports stored payloads through
// the codec package.
//
// # Event System
//
// Every generation, store and delete is published on the EventBus. The
// server forwards events to connected clients via Server-Sent Events
// (SSE) and logs them.
package service
