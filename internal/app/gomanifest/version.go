package gomanifest

// The version of gomanifest, set by the build.
var Version = "0.1.0"
