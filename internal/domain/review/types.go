package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)
