// Package config loads a document of the default values channel
// descriptors use: sample rate, bitVolts scale, and spike pre/post
// sample counts. The channel constructors themselves do not read it.
// There is no network protocol, no CLI, and no persistent state beyond
// this defaults document.
//
// Defaults are loaded from a YAML file through a path-guarded,
// size-guarded safe file read and validated before use.
package config
