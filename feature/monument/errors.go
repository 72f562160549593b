package monument

import "errors"

var (
	// ErrMonumentNotFound is returned when the monument does not exist.
	ErrMonumentNotFound = errors.New("monument not found")
	// ErrSuggestionNotFound is returned when the suggestion does not exist.
	ErrSuggestionNotFound = errors.New("suggestion not found")
	// ErrSuggestionClosed is returned when moderating a suggestion that is
	// no longer pending.
	ErrSuggestionClosed = errors.New("suggestion already moderated")
)
