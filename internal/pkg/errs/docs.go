// Package errs provides the typed error kinds returned by the fulfillment core.
// Every error follows the same pattern: a sentinel error variable, a struct type
// carrying the failure details, constructor functions, an Error() method for
// formatting, and an Unwrap() method targeting the sentinel so callers can
// classify failures with errors.Is.
//
// Generic kinds (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange,
// ObjectNotFound) are used by value-object and aggregate constructors.
// Domain kinds map one-to-one to the failure modes of the order, delivery and
// credit state machines: InvalidRequest, InvalidTransition, IncompleteValidation,
// InvalidItemResolution, PreconditionFailed, AlreadyResolved, DuplicateCredit,
// Conflict and InvalidAmount. All of them are detected locally and returned
// synchronously to the caller; nothing in this package is retried internally.
package errs
