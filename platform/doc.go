/*
Package platform maps the Windows filesystem API's access-mask and
create-disposition flags onto the core's rules.FileAccessMode and
rules.CreateDisposition value types. On windows builds the flag
constants come from golang.org/x/sys/windows; on other platforms a
portable set of the same well-known NT values is used instead so the
module still builds and tests cleanly off-target.
*/
package platform
