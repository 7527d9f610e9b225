/*
Package director is the heart of Pathwinder: it selects the filesystem
rule (or related-rule container) that applies to a given absolute path
and turns application-level file and directory operations into
declarative instructions the external executor carries out.

A Director is constructed from a finalized registry.FinalizedRegistry
and is immutable and safe for concurrent use by many goroutines; all of
its methods are pure functions of the director's state and their
arguments.
*/
package director
