// Package layout implements the force-directed simulation that positions
// graph nodes inside the viewport.
//
// A Simulation owns the node slice of a resolved graph and mutates each
// node's position and velocity on every Step. Four forces are combined:
//
//   - LinkForce: springs pulling linked nodes toward a rest distance
//   - ManyBody: pairwise charge, Barnes-Hut approximated on a quadtree
//   - Center: translates the centroid onto the viewport center
//   - Collide: keeps a minimum separation between node discs
//
// Alpha is the cooling factor. Start sets it to 1; each step moves it toward
// the alpha target by a fixed decay, and the simulation goes idle once alpha
// falls below alpha min. Reheat raises the target (drag start) and Cool
// lowers it back to zero (drag end).
//
// Pinned nodes (FX/FY set) keep their pinned coordinates exactly and carry
// no velocity on the pinned axis, but still act on other nodes.
//
// The package has no clock of its own. Hosts call Step from their
// animation tick, or Settle to run headless until rest.
package layout
