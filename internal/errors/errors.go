// Package errors provides structured error types for qrpack.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindEncode
	KindArchive
	KindClipboard
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindEncode:
		return "encode error"
	case KindArchive:
		return "archive error"
	case KindClipboard:
		return "clipboard error"
	case KindState:
		return "state error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for qrpack.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Input errors

func NoConfigs() error {
	return E(Op("chunk.Generate"), KindInvalid, "no configs found")
}

func InvalidURL(input string, err error) error {
	if err == nil {
		return E(Op("chunk.ParseURL"), KindInvalid, fmt.Sprintf("%q is not a valid URL", input))
	}
	return E(Op("chunk.ParseURL"), KindInvalid, fmt.Sprintf("%q is not a valid URL", input), err)
}

// Rendering and export errors

func EncodeFailed(page int, err error) error {
	return E(Op("compositor.Render"), KindEncode, fmt.Sprintf("failed to encode page %d", page), err)
}

func AssetLoadFailed(path string, err error) error {
	return E(Op("compositor.LoadAsset"), KindIO, fmt.Sprintf("failed to load asset %s", path), err)
}

func ArchiveFailed(name string, err error) error {
	return E(Op("export.Zip"), KindArchive, fmt.Sprintf("failed to write archive %s", name), err)
}

func WriteFailed(path string, err error) error {
	return E(Op("export.WritePNG"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Clipboard errors

func ClipboardFailed(action string, err error) error {
	return E(Op("clipboard."+action), KindClipboard, "clipboard unavailable", err)
}

// State errors

func StateLoadFailed(key string, err error) error {
	return E(Op("state.Load"), KindState, fmt.Sprintf("failed to parse saved record %s", key), err)
}

func StateSaveFailed(key string, err error) error {
	return E(Op("state.Save"), KindState, fmt.Sprintf("failed to save record %s", key), err)
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
