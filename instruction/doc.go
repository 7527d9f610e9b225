/*
Package instruction defines the declarative result of director decisions.

Every type here is plain data: structural equality, no behavior, no
dependency on filesystem state. The director package constructs values
of these types; an external executor (outside this module's scope)
consumes them and performs the actual I/O. A pure decision record, not
an imperative action.
*/
package instruction
