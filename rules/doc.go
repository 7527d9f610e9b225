/*
Package rules implements the immutable filesystem rule value type and the
ordered container of rules that share an origin directory.

A FilesystemRule never mutates after construction, and all of its
comparison and matching helpers are pure functions of its fields, so a
single rule can be shared across goroutines without synchronization
once built.
*/
package rules
