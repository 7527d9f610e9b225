/*
Package config parses a sectioned key/value configuration document
into the pieces registry.Registry and the resolver need: a global
LogLevel, a Definitions section feeding the CONF resolver domain, and
one FilesystemRule:<name> section per rule. The core itself has no
opinion on configuration file syntax; this package is ambient
scaffolding for applications that want a ready-made text format rather
than building a Registry by hand.
*/
package config
