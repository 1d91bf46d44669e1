// Package classify provides ready-made retry predicates for the common
// case where the domain failure type is error: transient PostgreSQL
// failures, temporary network trouble, and their union.
package classify
