// Package domain defines the core types of the rdfview graph renderer.
//
// This package contains the in-memory representation of the entity/literal
// graph received from a data source, together with the simulation state the
// layout engine attaches to every node.
//
// # Core Types
//
// Node is either an entity (a subject or object resource) or a literal group
// (the scalar properties of one entity). Nodes carry their simulated
// position and velocity, plus an optional pin (FX, FY) set while a node is
// dragged.
//
// Link is a labelled relation between two node ids. Graph.Resolve validates
// the graph and binds every link to its endpoint nodes; a link naming an
// unknown id makes the whole graph fail with ErrMalformedGraph.
//
// Mode selects between the plain graph display ("graphe") and the
// cartouche display where literal properties are written next to their node.
//
// # Errors
//
// ErrMalformedGraph and ErrDataSource are the two distinguishable load
// failures reported to callers; test them with errors.Is.
package domain
