// Package classnode is a structural, in-memory model of one JVM class body.
//
// It mirrors the tree shape a bytecode toolkit hands to a transformer: the
// class header, its fields and methods, and every instruction operand that
// carries a symbolic reference. Binary class-file parsing and writing are not
// part of this package; bodies are exchanged with the host as values, and a
// YAML document form (see Decode and Encode) is provided for tooling and tests.
//
// Names follow the JVM conventions:
//   - internal names use '/' separators ("net/minecraft/world/World")
//   - descriptors use the field/method descriptor grammar ("Lx/Y;", "(I)V")
//   - signatures use the generic signature grammar ("Ljava/util/List<TT;>;")
package classnode
