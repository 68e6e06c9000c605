package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrMovieNotFound signals a missing movie record.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrEngineExecution signals a failed search engine execution.
	// A request that hits it returns no results at all, never a partial set.
	ErrEngineExecution = errors.New("engine execution failed")
)
