// Package zoo builds well-known graphs: complete, unconnected, complete
// bipartite and ring graphs as concrete stores, the unbounded [Ray], and the
// lazily computed replacement product of two regular graphs.
//
// Constructors take already-validated arguments. Invalid sizes are
// programming errors and panic; callers parsing user input should validate
// first (see [ValidateReplacementProduct]).
package zoo
