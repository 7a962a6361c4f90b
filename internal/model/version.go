package model

// Version is the release version reported by --version and the update check.
var Version = "v0.3.0"
