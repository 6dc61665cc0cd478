// Package app contains the core application assembly. It defines the main
// App struct, its configuration, and startup: building an isolated logger,
// loading module manifests, registering the compiled-in Go modules, and
// validating that contracts and code agree — decoupled from any specific
// host embedding.
package app
