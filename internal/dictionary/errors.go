package dictionary

import "errors"

// ErrNotFound is returned when the dictionary file does not exist.
var ErrNotFound = errors.New("dictionary file not found")

// ErrMalformed indicates the file is not a JSON array of entry objects.
var ErrMalformed = errors.New("malformed dictionary file")

// ErrEmpty is returned when the file parses but holds no entries.
var ErrEmpty = errors.New("dictionary has no entries")
