// Package match provides edit-distance scoring used to suggest the intended
// name when a configured identifier (a module name in the launch mod list,
// for example) cannot be found.
package match
