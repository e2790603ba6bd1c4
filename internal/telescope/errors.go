package telescope

import "errors"

// Error kinds for reference-data access. Callers match with errors.Is.
var (
	// ErrNotFound marks a missing configuration, alignment or model file,
	// or a station name absent from a configuration file.
	ErrNotFound = errors.New("not found")

	// ErrMalformed marks reference data that exists but cannot be parsed.
	ErrMalformed = errors.New("malformed reference data")

	// ErrInvalidArgument marks identifier arguments the filename scheme
	// cannot accept, such as an empty band.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDeserialize marks a telescope-model blob that exists but cannot
	// be decoded.
	ErrDeserialize = errors.New("cannot decode telescope model")
)
