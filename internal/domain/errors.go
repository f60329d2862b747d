package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("user does not own this listing")
	ErrNoImages        = errors.New("at least one image is required")

	ErrSwipeAlreadyExists    = errors.New("listing already swiped")
	ErrCannotSwipeOwnListing = errors.New("cannot swipe your own listing")

	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchInactive       = errors.New("match is no longer active")
	ErrNotMatchParticipant = errors.New("user is not part of this match")
)
