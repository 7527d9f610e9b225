/*
Package resolve expands "%DOMAIN::NAME%"-style references used throughout
filesystem rule definitions. Resolver.ResolveSingle expands one
"[DOMAIN::]NAME" reference with memoization and cycle detection, and
Resolver.ResolveAll expands every reference embedded in a larger string.

Four domains are registered by default: BUILTIN (process/host
identifying strings), ENV (environment variables), FOLDERID (well-known
system folders), and CONF (deployment-supplied definitions, which may
themselves reference other domains, including CONF itself, the
mutual-recursion case cycle detection exists to catch).
*/
package resolve
