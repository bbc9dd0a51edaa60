package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidLevel  = errors.New("invalid level")
	ErrDecode        = errors.New("decode error")
	ErrEncode        = errors.New("encode error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindInvalidLevel       ErrorKind = "invalid_level"
	KindConflictingMode    ErrorKind = "conflicting_mode"
	KindColorCountMismatch ErrorKind = "color_count_mismatch"
	KindUnsupportedFormat  ErrorKind = "unsupported_format"
	KindDecode             ErrorKind = "decode"
	KindEncode             ErrorKind = "encode"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsConfigError reports whether err is a fatal configuration error, one that
// aborts the run before any file is touched.
func IsConfigError(err error) bool {
	var oe *OpError
	if !errors.As(err, &oe) {
		return false
	}
	switch oe.Kind {
	case KindInvalidLevel, KindConflictingMode, KindColorCountMismatch, KindInvalidConfig:
		return true
	}
	return false
}
