package version

// Version is the semantic version of this build. Overridable at link
// time with -ldflags "-X .../internal/version.Version=...".
var Version = "0.3.0"
