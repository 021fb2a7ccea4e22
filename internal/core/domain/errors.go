package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// InvalidPluginMarker is written by the processor layer when a plugin entry has the wrong shape.
// The subprocess dispatcher looks for it in the worker's diagnostic output.
const InvalidPluginMarker = "invalid css plugin"

var (
	// ErrTransformFailed is returned when the CSS toolchain reports a processing error.
	ErrTransformFailed = zerr.New("css transform failed")

	// ErrEnvironmentIncompatible is returned when a plugin-shape mismatch is detected under a known framework.
	ErrEnvironmentIncompatible = zerr.New("css plugin configuration is incompatible with the host framework")

	// ErrInvalidPlugin is returned when a plugin entry is not a single-key mapping.
	ErrInvalidPlugin = zerr.New(InvalidPluginMarker)

	// ErrUnknownPlugin is returned when a plugin name is not registered.
	ErrUnknownPlugin = zerr.New("unknown css plugin")

	// ErrMissingConsumerID is returned when the memory tier is enabled without a consumer identity.
	ErrMissingConsumerID = zerr.New("memory cache requires a consumer id")

	// ErrWorkerTimeout is returned when the worker process does not finish within the configured timeout.
	ErrWorkerTimeout = zerr.New("transform worker timed out")

	// ErrWorkerSpawnFailed is returned when the worker process cannot be started.
	ErrWorkerSpawnFailed = zerr.New("failed to start transform worker")

	// ErrWorkerProtocol is returned when the worker answers with a malformed response.
	ErrWorkerProtocol = zerr.New("malformed transform worker response")

	// ErrCacheDirCreateFailed is returned when the disk cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when a disk cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheReadFailed is returned when a disk cache entry exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCommandStartFailed is returned when an external process cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrEmptyCommand is returned when a command has no program name.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrInputReadFailed is returned when an input stylesheet cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input")
)

// NewTransformError carries toolchain diagnostic text in the error message.
// errors.Is matches ErrTransformFailed.
func NewTransformError(diagnostic string) error {
	return errors.Join(ErrTransformFailed, zerr.New(strings.TrimSpace(diagnostic)))
}
