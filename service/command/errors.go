package command

import "errors"

var (
	// ErrSyntax is returned for malformed sub-commands
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownCommand is returned when no built-in matches the command name
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArgument is returned for missing or non-numeric arguments and flag values
	ErrInvalidArgument = errors.New("invalid argument")
)
