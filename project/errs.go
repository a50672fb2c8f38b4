package project

import (
	"errors"
	"fmt"
)

var (
	ErrReference    = errors.New("reference error")
	ErrPrecondition = errors.New("precondition failed")
	ErrIO           = errors.New("i/o failure")

	ErrUnsupportedTopology = fmt.Errorf("%w: unsupported node kind", ErrReference)
	ErrUnknownFileType     = fmt.Errorf("%w: unknown file type", ErrPrecondition)
)

func referenceErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReference, fmt.Sprintf(format, args...))
}

func preconditionErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func ioErr(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}

func unsupportedErr(o Object, during string) error {
	return fmt.Errorf("%w: %s %s while %s", ErrUnsupportedTopology, o.ISA(), o.GUID(), during)
}
