// Package discover enumerates the classes inside a mod archive that need
// remapping.
//
// Discovery locates the archive through the launch mod list, resolves it to
// a canonical path under the game's mods directory, opens it as a read-only
// fs.FS and walks every entry. Each ".class" entry becomes a Target named by
// its internal class name, unless it falls under the archive's own support
// namespace (see Exclusion).
//
// Discovery is synchronous and fail-fast: any I/O failure aborts it and no
// partial result is returned.
package discover
