// Package mount instantiates composition units.
//
// Mounting a module type under a caller-chosen leaf identifier establishes
// the unit's scope path (the caller's path plus the leaf), materializes the
// contract's input defaults into the unit's restricted slice of the input
// registry, runs the view builder, and runs the behavior binder — wiring
// the two roles together through nothing but the shared qualified
// identifier namespace. The scope path is fixed at mount time and lives
// until the unit is torn down.
package mount
