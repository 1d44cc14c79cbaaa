// Package version holds the release version, set at build time with
// -ldflags "-X github.com/battlesnakeio/termsnake/version.Version=...".
package version

// Version of the binary.
var Version = "dev"
