// file: services/errors.go
package services

import "errors"

// Named state errors so controllers can render the exact condition rather than
// a generic failure.
var (
	ErrInvalidStateTransition = errors.New("invalid trip state transition")
	ErrTripFull               = errors.New("trip has reached its maximum number of participants")
	ErrRegistrationClosed     = errors.New("trip registration is not open")
	ErrDeadlinePassed         = errors.New("trip registration deadline has passed")
	ErrConsentAlreadySigned   = errors.New("consent has already been signed")
	ErrSignatureRequired      = errors.New("a typed or image signature is required")
	ErrParticipantNotReady    = errors.New("participant has not met consent or medical requirements")
	ErrMinParticipantsNotMet  = errors.New("minimum participant count has not been met")
	ErrNotFound               = errors.New("record not found")
)
