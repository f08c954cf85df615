package Store

import (
	"errors"
	"fmt"
)

var (
	/* Matched by every *DuplicateRegistrationError. */
	ErrDuplicateRegistration = errors.New("duplicate registration")
	/* A nil entity, or one without a usable identity key. */
	ErrInvalidEntity = errors.New("invalid entity")
)

/*
Returned when a different instance is registered under a key that is already taken in the same collection.

This is a producer bug (the same declaration was discovered twice as distinct objects), never a runtime condition.
*/
type DuplicateRegistrationError struct {
	Kind Kind
	Key  string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("%s: %s %q is already registered in %s as a different instance",
		ErrDuplicateRegistration, e.Kind, e.Key, e.Kind.Collection())
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}
