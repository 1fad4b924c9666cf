package apperrors

import "errors"

// ErrInvalidAmount indicates a non-positive or malformed monetary input.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidPercentage indicates a split percentage outside [0, 100].
var ErrInvalidPercentage = errors.New("invalid percentage")

// ErrInvalidDuration indicates a non-positive month count.
var ErrInvalidDuration = errors.New("invalid duration")

// ErrUnknownAccount indicates an account outside the chart of accounts.
var ErrUnknownAccount = errors.New("unknown account")

// ErrEmptySide indicates an entry with no debit lines or no credit lines.
var ErrEmptySide = errors.New("entry side is empty")

// ErrUnbalanced indicates an entry whose debits do not equal its credits.
var ErrUnbalanced = errors.New("entry does not balance")

// ErrUnknownOperation indicates an operation kind the catalog does not know.
var ErrUnknownOperation = errors.New("unknown operation")
