package chern

import "errors"

var (
	// ErrNilForm indicates a Class built without a curvature form.
	ErrNilForm = errors.New("chern: nil curvature form")

	// ErrUnsupportedOrder indicates a Chern character order outside 0..2.
	ErrUnsupportedOrder = errors.New("chern: character order must be 0, 1 or 2")
)
