// Package manifest parses the HCL declarations of module type contracts.
//
// A manifest declares, for one module type, the named inputs the module
// reads (with value types and optional defaults) and the named outputs it
// produces. The manifest is the public contract: when a unit of the module
// type is mounted, the declared defaults are materialized into its scoped
// input registry, and the registry validation step checks that every
// linked-in Go module has a matching declaration.
//
// Input and output names double as leaf identifiers, so they are held to
// the same validation as every other identifier — in particular they can
// never contain the reserved scope separator.
package manifest
