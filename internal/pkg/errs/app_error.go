package errs

import (
	"errors"
	"log/slog"
	"net/http"
)

// Kind categorizes every error the scan pipeline can surface to a caller.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindDatabase      Kind = "DATABASE"
	KindSecurity      Kind = "SECURITY"
	KindRateLimit     Kind = "RATE_LIMIT"
	KindExpiration    Kind = "EXPIRATION"
	KindBusinessLogic Kind = "BUSINESS_LOGIC"
	KindUnknown       Kind = "UNKNOWN"
)

// HTTPStatus is the fixed status mapping for a kind. Unclassified errors
// collapse to 500 so nothing internal leaks through an unexpected path.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindDatabase:
		return http.StatusInternalServerError
	case KindSecurity:
		return http.StatusForbidden
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindExpiration:
		return http.StatusGone
	case KindBusinessLogic:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the retry executor may re-attempt an operation
// that failed with this kind. Only database failures qualify; everything
// else is terminal.
func Retryable(kind Kind) bool {
	return kind == KindDatabase
}

const genericUserMessage = "An unexpected error occurred. Please try again."

// AppError is the categorized error carried through the pipeline. The
// internal message may contain technical detail and is only ever logged;
// the user message is what a client sees.
type AppError struct {
	Kind        Kind
	msg         string
	userMessage string
	Context     map[string]any
	cause       error
}

func NewAppError(kind Kind, msg, userMessage string) *AppError {
	return &AppError{Kind: kind, msg: msg, userMessage: userMessage}
}

// WrapAppError attaches a cause, preserving its stack for the log sink.
func WrapAppError(err error, kind Kind, msg, userMessage string) *AppError {
	return &AppError{Kind: kind, msg: msg, userMessage: userMessage, cause: Wrap(err, msg)}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.cause.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// UserMessage never exposes internal detail; a missing message falls back
// to the generic one.
func (e *AppError) UserMessage() string {
	if e.userMessage == "" {
		return genericUserMessage
	}
	return SanitizeMessage(e.userMessage)
}

func (e *AppError) HTTPStatus() int {
	return HTTPStatus(e.Kind)
}

// WithContext adds a diagnostic field. Context is sanitized before it
// reaches any output channel, so callers may pass raw values.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// AsAppError extracts an AppError from anywhere in an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf classifies an arbitrary error, defaulting to Unknown.
func KindOf(err error) Kind {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}

// Convenience constructors for the common kinds.

func Validation(msg string, field string) *AppError {
	e := NewAppError(KindValidation, msg, msg)
	if field != "" {
		e.WithContext("field", field)
	}
	return e
}

func Database(err error, op string) *AppError {
	return WrapAppError(err, KindDatabase, "database operation failed: "+op,
		"A temporary problem occurred while processing your request. Please try again.").
		WithContext("operation", op)
}

func Security(msg string) *AppError {
	return NewAppError(KindSecurity, msg, "This QR code could not be verified.")
}

func RateLimited(retryAfterSeconds int64) *AppError {
	return NewAppError(KindRateLimit, "rate limit exceeded",
		"Too many scan attempts. Please wait before trying again.").
		WithContext("retry_after_seconds", retryAfterSeconds)
}

func Expired(msg string) *AppError {
	return NewAppError(KindExpiration, msg, "This QR code has expired.")
}

func BusinessLogic(msg, userMessage string) *AppError {
	return NewAppError(KindBusinessLogic, msg, userMessage)
}

// Report writes an error to the internal log sink with full context.
// Stack excerpts and raw context stay on this channel only; the sanitized
// user message is what leaves the process.
func Report(logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	kind := KindOf(err)
	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("error", err.Error()),
	}
	if appErr, ok := AsAppError(err); ok && len(appErr.Context) > 0 {
		attrs = append(attrs, slog.Any("context", SanitizeMap(appErr.Context)))
	}
	if stack := ExtractStackLines(err, 5); len(stack) > 1 {
		attrs = append(attrs, slog.Any("stack", stack))
	}
	if HTTPStatus(kind) >= 500 {
		logger.Error("operation failed", attrs...)
		return
	}
	logger.Warn("operation rejected", attrs...)
}
