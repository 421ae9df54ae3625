package main

import (
	"context"
	"errors"
	"os"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/config"
	"github.com/AngelaFabregues/CheatsheetImagesGenerator/output"
)

// Sentinel errors raised by the command itself.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrUsage         = errors.New("invalid usage")
)

// Exit codes follow Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess   = 0
	ExitGeneral   = 1   // unexpected errors, font loading
	ExitUsage     = 2   // invalid flags or config
	ExitIO        = 3   // unreadable input, unwritable output
	ExitCancelled = 130 // interrupted by SIGINT/SIGTERM
)

// exitCodeFor maps an error to an exit code. Errors must be wrapped with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}

	if errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, output.ErrWrite) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidColor) ||
		errors.Is(err, config.ErrInvalidLength) ||
		errors.Is(err, config.ErrInvalidSize) {
		return ExitUsage
	}

	// fonts.ErrFontLoad and everything else
	return ExitGeneral
}
