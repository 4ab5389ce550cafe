package recommendation

import "errors"

var (
	// ErrRetrievalFailed wraps any failure reading orders or the catalog.
	ErrRetrievalFailed = errors.New("recommendation data retrieval failed")

	ErrInvalidConfig = errors.New("invalid recommendation config")
)
