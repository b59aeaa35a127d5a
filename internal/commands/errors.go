package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidation    = "COMMAND_VALIDATION_FAILED"
	codeCanceled      = "COMMAND_CONTEXT_CANCELED"
	codeTimeout       = "COMMAND_CONTEXT_TIMEOUT"
	codeContext       = "COMMAND_CONTEXT_ERROR"
	codeExecuteFailed = "COMMAND_EXECUTION_FAILED"
)

// ErrorCode maps a sentinel error returned by a command function to the text
// code attached when the failure is wrapped.
type ErrorCode struct {
	Target error
	Code   string
}

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidation)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command cancelled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command deadline exceeded").
			WithTextCode(codeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(codeContext)
	}
}

// wrapExecuteError tags err with the first matching code, falling back to
// COMMAND_EXECUTION_FAILED.
func wrapExecuteError(err error, codes []ErrorCode) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code := codeExecuteFailed
	for _, candidate := range codes {
		if candidate.Target != nil && errors.Is(err, candidate.Target) {
			code = candidate.Code
			break
		}
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(code)
}
