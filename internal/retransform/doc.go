// Package retransform implements the OptiFine development retransformer.
//
// In a development environment the game runs with deobfuscated ("mcp")
// names, while OptiFine ships classes compiled against "srg" names. The
// Transformer asks the host pipeline for every class OptiFine provides plus
// a list of explicitly pinned classes, and rewrites their symbolic references
// into the runtime naming scheme.
//
// Pinned classes are remapped only after OptiFine's own transformer has run
// on them; the host scheduler learns this through CastVote.
package retransform
