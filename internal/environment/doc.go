// Package environment is the key-value launch environment a transformer is
// constructed from: the installed mod list, the game directory, the list of
// explicitly pinned classes and the registered name mapping services.
//
// Properties are read through typed keys:
//
//	mods, ok := environment.Get(env, environment.ModList)
//
// A Profile is the YAML file form of an environment, used by the CLI:
//
//	gamedir: ./run
//	modlist:
//	  - name: OptiFine
//	    file: /OptiFine_1.16.5_HD_U_G8.jar
//	targets:
//	  - net/minecraft/client/renderer/WorldRenderer
//	mappings:
//	  srg:
//	    path: mappings/srg-to-mcp.yaml
//	    format: yaml
//	exclude:
//	  - "**/shaders/**"
//
// Relative paths in a profile resolve against the profile's directory.
package environment
