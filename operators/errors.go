package operators

import "errors"

var (
	// ErrAlreadyExecuted is returned when executing an operator twice.
	ErrAlreadyExecuted = errors.New("operator has already been executed")

	// ErrNotExecuted is returned by GetOutput before a successful Execute.
	ErrNotExecuted = errors.New("operator has not been executed")

	// ErrReentrant is returned when an operator is executed from within
	// its own execution.
	ErrReentrant = errors.New("operator is already executing")

	// ErrUnsupportedSegment is returned when a scan encounters a segment
	// variant it has no algorithm for.
	ErrUnsupportedSegment = errors.New("unsupported segment variant")

	// ErrUnknownScanType is returned for a scan type without a comparison.
	ErrUnknownScanType = errors.New("unknown scan type")
)
