/*
Package scopeid provides the structured, type-safe representation of scope
paths and qualified control identifiers within the system, based on the
canonical format `segment-segment-...-leaf`.

A scope path is the ordered sequence of identifiers from the application
root down to a composition unit; the root is the empty path. Qualifying a
leaf identifier against a path joins the segments with the reserved `-`
separator. Because the separator is disallowed inside every segment,
parsing a qualified identifier back into its path is unambiguous, and two
units with different scope paths can never mint colliding identifiers.

This package enforces the identifier schema and centralizes all
formatting, validation, and parsing logic.
*/
package scopeid
