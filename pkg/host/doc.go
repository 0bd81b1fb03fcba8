// Package host defines the boundary between the reconciler and the
// presentation tree it drives.
//
// The reconciler never touches a concrete tree directly. It calls the
// primitives on Host (create, append, replace, remove, set property,
// add and remove listeners) and treats every Node as an opaque handle.
// A Host is assumed to be the sole owner of every node it hands out.
//
// # Mutation Journal
//
// Hosts may record each primitive they perform as a Mutation. The journal
// is what tests assert against and what the inspector streams to
// connected clients.
package host
