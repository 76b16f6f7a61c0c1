package common

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code identifies the failure kind of a capture pipeline error. Every fallible
// stage reports failure through an AppError carrying one of these codes; nothing
// panics across a package boundary.
type Code string

const (
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeUnavailable  Code = "SERVICE_UNAVAILABLE"
	CodeExtraction   Code = "EXTRACTION_FAILED"
	CodeNoText       Code = "NO_TEXT"
	CodeNotRecipe    Code = "NOT_A_RECIPE"
	CodeParsing      Code = "PARSING_FAILED"
	CodePersistence  Code = "PERSISTENCE_FAILED"
	CodeCancelled    Code = "CANCELLED"
	CodeUnexpected   Code = "UNEXPECTED"
)

// AppError represents application-specific errors
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")
)

// E builds an AppError.
func E(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Ef builds an AppError with a formatted message and no cause.
func Ef(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the Code of err if it is (or wraps) an AppError,
// CodeCancelled for context cancellation, and CodeUnexpected otherwise.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancelled
	}
	return CodeUnexpected
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Cancelled converts a context error into the pipeline's cancellation failure.
func Cancelled(cause error) *AppError {
	return &AppError{Code: CodeCancelled, Message: "operation cancelled", Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// GRPCStatus maps an AppError code onto the closest grpc status code.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	switch CodeOf(err) {
	case CodeInvalidInput:
		return status.Error(codes.InvalidArgument, err.Error())
	case CodeUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	case CodeNotRecipe, CodeNoText:
		return status.Error(codes.FailedPrecondition, err.Error())
	case CodeCancelled:
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
