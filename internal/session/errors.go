package session

import "errors"

var (
	// ErrLoadingSession is returned when the store fails for a reason other
	// than an unknown id.
	ErrLoadingSession = errors.New("failed to load session")
	// ErrSavingSession is returned when a session cannot be committed.
	ErrSavingSession = errors.New("failed to save session")
	// ErrGeneratingID is returned when the random source fails.
	ErrGeneratingID = errors.New("failed to generate session id")
)
