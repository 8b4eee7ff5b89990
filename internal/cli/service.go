// Package cli holds the main business logic in our CLI: delegating work to external helper programs and turning
// their raw output into either a parsed JSON document or a classified failure.
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/runjson`.
package cli

import (
	"go.uber.org/zap"

	bitcoinfirst "github.com/TKChattoraj/bitcoin-first"
)

// Service is the main CLI service.
type Service struct {
	Log        *zap.SugaredLogger
	FileSystem FileSystem
	TaskRunner TaskRunner
}

// PrintVersion prints the CLI version
func (s Service) PrintVersion() {
	s.Log.Infoln(bitcoinfirst.Version)
}
