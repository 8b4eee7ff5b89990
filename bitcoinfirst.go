// Package bitcoinfirst only holds the version number of this project. It is used by both `cmd/runjson` and
// `internal/cli`.
package bitcoinfirst

// Version is the current version of this project. Usually, this will be set during build-time using ldflags.
var Version = "unknown"
