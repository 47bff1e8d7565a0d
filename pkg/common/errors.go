package common

import "errors"

var (
	// A record in the manifest is missing a required field or has a field of the wrong type.
	ErrMalformedEntry = errors.New("malformed entry")
	// The manifest itself is not a document with a "versions" list.
	ErrMalformedDocument = errors.New("malformed document")
	// A channel tag is not one of the known channels.
	ErrUnknownChannel = errors.New("unknown channel")
	// The "versions" list of the manifest is empty.
	ErrEmptyCatalog = errors.New("empty catalog")
	// The input at the channel prompt was not a valid channel index.
	ErrInvalidChannelChoice = errors.New("invalid channel choice")
	// The input at the entry prompt was not a valid entry index.
	ErrInvalidEntryChoice = errors.New("invalid entry choice")
	// A strict lookup did not find a matching entry.
	ErrEntryNotFound = errors.New("entry not found")
)
