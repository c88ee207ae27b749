// Package remap rewrites every symbolic reference in a class body through a
// Mapper.
//
// Rewrite is a full rebuild pass: it visits the class header, supertypes,
// nest and inner class data, annotations, record components, fields,
// methods and every instruction operand, and it parses descriptors and
// generic signatures so that class names embedded inside them are mapped as
// well. A reference kind left unvisited would leave a stale name behind, so
// the traversal is exhaustive by construction.
//
// The input body is never modified; Rewrite returns a freshly built body.
// Names unknown to the Mapper pass through unchanged, which also makes a
// second pass over already-rewritten bodies a no-op.
package remap
