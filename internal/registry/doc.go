// Package registry provides the central "glue" for the module system.
//
// The Registry stores the mapping between module type identifiers used in
// manifests (e.g. "histogram") and the compiled Go roles that implement
// them — the view builder and the behavior binder. It also holds the
// parsed, format-agnostic contracts from the manifests themselves.
//
// During application startup the registry is populated and then validated
// to ensure the Go code and the public-facing manifests are in sync,
// preventing a wide class of runtime errors.
package registry
