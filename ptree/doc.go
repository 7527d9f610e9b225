/*
Package ptree implements a generic prefix tree indexing values of type T
by delimited string keys, with longest-matching-prefix lookup.

It is an arena-based tree: instead of parent/child raw pointers, the
tree owns a single slice of nodes and every edge is recorded as an
index into that slice. Erase leaves
tombstoned slots behind rather than compacting the arena; registries are
built once and rarely torn down rule-by-rule, so this trade favors
simplicity over reclaiming memory.
*/
package ptree
