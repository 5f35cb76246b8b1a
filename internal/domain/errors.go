package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError represents input that violates a domain constraint,
// for example a unit outside the recognized enumeration.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for domain validation failures.
var ErrValidation = ValidationError{}

// MicroserviceError represents a failure talking to an external
// collaborator (project or assembly service). It is kept distinct from
// validation and not-found errors so callers can tell transient
// infrastructure failure apart from domain failure.
type MicroserviceError struct {
	Service string
	Message string
}

func (e MicroserviceError) Error() string {
	if e.Service == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e MicroserviceError) Is(target error) bool {
	_, ok := target.(MicroserviceError)
	if ok {
		return true
	}
	_, ok = target.(*MicroserviceError)
	return ok
}

// ErrMicroservice is the sentinel error for external service failures.
var ErrMicroservice = MicroserviceError{}
