// Package naming provides the symbolic rename lookup used by the remapper
// and the adapter that exposes it as a remap.Mapper.
//
// A Resolver is an opaque capability: given a reference Domain and an old
// name it returns the new name, or the old name when no rename applies.
// Table is the file-backed Resolver shipped with this module.
//
// # Table sources
//
// YAML tables list renames per domain:
//
//	version: "1"
//	classes:
//	  net/minecraft/client/renderer/WorldRenderer: net/minecraft/client/renderer/LevelRenderer
//	methods:
//	  func_72712_a: loadRenderers
//	fields:
//	  field_72769_h: world
//
// MCP exports are directories holding fields.csv and methods.csv with the
// header "searge,name,side,desc"; only the first two columns are used.
//
// Method and field renames are keyed by name alone, matching the searge
// naming convention in which every member name is globally unique. A method
// rename never applies to a field of the same textual name.
package naming
