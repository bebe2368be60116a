// Package handler provides the HTTP API of the rdfview generator service.
//
// # Endpoints
//
//	POST   /generate                form triples, mode -> {nodes, links, node_props}
//	POST   /generate_and_redirect   stores the payload, 303 to /graphs/{id}?mode=...
//	POST   /graphs                  stores the payload, 201 {id, url}
//	GET    /graphs                  stored graph summaries, newest first
//	GET    /graphs/{id}             stored payload (?format=json|yaml)
//	DELETE /graphs/{id}             removes a stored graph
//	GET    /events                  Server-Sent Events stream of graph events
//
// # Errors
//
// Failures are JSON ErrorResponse bodies: 400 for bad forms, malformed
// graphs and unknown formats, 404 for unknown graph ids, 500 otherwise.
//
// # Middleware
//
// Chain composes Recover, CORS and Logger around the mux.
package handler
