package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller's role does not carry the required capability.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInvalidState indicates a register lifecycle operation invoked in the wrong state,
// e.g. opening an already open register or closing a closed one.
var ErrInvalidState = errors.New("invalid state transition")

// ErrNegativeStock indicates a stock mutation that would drive an item's
// on-hand quantity below zero. The mutation is rejected without persisting.
var ErrNegativeStock = errors.New("stock cannot go negative")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
