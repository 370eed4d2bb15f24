package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target for every error type in this package.
// Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrObjectNotFound        = errors.New("object not found")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrIncompleteValidation  = errors.New("incomplete validation")
	ErrInvalidItemResolution = errors.New("invalid item resolution")
	ErrPreconditionFailed    = errors.New("precondition failed")
	ErrAlreadyResolved       = errors.New("already resolved")
	ErrDuplicateCredit       = errors.New("duplicate credit")
	ErrConflict              = errors.New("conflict")
	ErrInvalidAmount         = errors.New("invalid amount")
)

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value did not satisfy a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates an aggregate or record could not be located.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidRequestError indicates malformed input or an unknown reference,
// detected before any state transition was attempted.
type InvalidRequestError struct {
	Reason string
	Cause  error
}

func NewInvalidRequestError(reason string) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason}
}

func NewInvalidRequestErrorWithCause(reason string, cause error) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason, Cause: cause}
}

func (e *InvalidRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidRequest, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// InvalidTransitionError indicates an operation is not legal from the aggregate's
// current state.
type InvalidTransitionError struct {
	Entity    string
	From      string
	Operation string
}

func NewInvalidTransitionError(entity, from, operation string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, Operation: operation}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s in state %s does not allow %s", ErrInvalidTransition, e.Entity, e.From, e.Operation)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IncompleteValidationError indicates a validation batch did not cover every
// order item exactly once. The batch is rejected atomically.
type IncompleteValidationError struct {
	MissingItemIDs []string
	UnknownItemIDs []string
}

func NewIncompleteValidationError(missingItemIDs, unknownItemIDs []string) *IncompleteValidationError {
	return &IncompleteValidationError{MissingItemIDs: missingItemIDs, UnknownItemIDs: unknownItemIDs}
}

func (e *IncompleteValidationError) Error() string {
	var parts []string
	if len(e.MissingItemIDs) > 0 {
		parts = append(parts, fmt.Sprintf("missing items: %s", strings.Join(e.MissingItemIDs, ", ")))
	}
	if len(e.UnknownItemIDs) > 0 {
		parts = append(parts, fmt.Sprintf("unknown items: %s", strings.Join(e.UnknownItemIDs, ", ")))
	}
	return fmt.Sprintf("%s: %s", ErrIncompleteValidation, strings.Join(parts, "; "))
}

func (e *IncompleteValidationError) Unwrap() error {
	return ErrIncompleteValidation
}

// InvalidItemResolutionError indicates a single item resolution violated the
// quantity/SKU rules. Carries the offending item id and the reason.
type InvalidItemResolutionError struct {
	ItemID string
	Reason string
}

func NewInvalidItemResolutionError(itemID, reason string) *InvalidItemResolutionError {
	return &InvalidItemResolutionError{ItemID: itemID, Reason: reason}
}

func (e *InvalidItemResolutionError) Error() string {
	return fmt.Sprintf("%s: item %s: %s", ErrInvalidItemResolution, e.ItemID, e.Reason)
}

func (e *InvalidItemResolutionError) Unwrap() error {
	return ErrInvalidItemResolution
}

// PreconditionFailedError indicates a cross-aggregate guard failed at commit time,
// e.g. the credit state changed between the snapshot read and the transition.
type PreconditionFailedError struct {
	Guard  string
	Reason string
}

func NewPreconditionFailedError(guard, reason string) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: guard, Reason: reason}
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPreconditionFailed, e.Guard, e.Reason)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// AlreadyResolvedError indicates an incident resolution was attempted twice.
type AlreadyResolvedError struct {
	IncidentID string
}

func NewAlreadyResolvedError(incidentID string) *AlreadyResolvedError {
	return &AlreadyResolvedError{IncidentID: incidentID}
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: incident %s", ErrAlreadyResolved, e.IncidentID)
}

func (e *AlreadyResolvedError) Unwrap() error {
	return ErrAlreadyResolved
}

// DuplicateCreditError indicates a credit approval was attempted for an order
// that already has an approved credit.
type DuplicateCreditError struct {
	OrderID string
}

func NewDuplicateCreditError(orderID string) *DuplicateCreditError {
	return &DuplicateCreditError{OrderID: orderID}
}

func (e *DuplicateCreditError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrDuplicateCredit, e.OrderID)
}

func (e *DuplicateCreditError) Unwrap() error {
	return ErrDuplicateCredit
}

// ConflictError indicates a concurrent mutation of the same aggregate won the
// race; the losing caller receives this instead of silently overwriting state.
type ConflictError struct {
	Aggregate string
	ID        string
}

func NewConflictError(aggregate, id string) *ConflictError {
	return &ConflictError{Aggregate: aggregate, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.Aggregate, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidAmountError indicates a payment amount was out of bounds for the
// credit's current balance.
type InvalidAmountError struct {
	Reason string
}

func NewInvalidAmountError(reason string) *InvalidAmountError {
	return &InvalidAmountError{Reason: reason}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidAmount, e.Reason)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
