// Package version holds the build version, set with
// -ldflags "-X seqrush/internal/version.Version=...".
package version

var Version = "0.1.0"
