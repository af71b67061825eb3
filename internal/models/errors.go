package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Allocation errors
var (
	ErrContractNotActive   = errors.New("hours can only be distributed for active contracts")
	ErrNoContractedHours   = errors.New("the contract does not have contracted hours set")
	ErrAlreadyAllocated    = errors.New("the contract already has hours distributed, delete the existing distribution first")
	ErrNoAllocationItems   = errors.New("at least one bucket must be specified")
	ErrTooManyItems        = errors.New("a distribution can have at most one bucket per hour type")
	ErrSumMismatch         = errors.New("the sum of the distributed hours does not match the contracted hours")
	ErrDuplicateHourType   = errors.New("each hour type can only appear once in a distribution")
	ErrUnknownHourType     = errors.New("there is no active hour type with the specified key")
	ErrFixedNotAllowed     = errors.New("a fixed allocation is only valid for the designated hour type")
	ErrAnnexParentNotFound = errors.New("the referenced contract has no allocation for this hour type to extend")
	ErrBucketExists        = errors.New("the contract already has an allocation for this hour type")
	ErrLedgerEntriesExist  = errors.New("the distribution cannot be deleted because ledger entries reference it")
	ErrAnnexesReferencing  = errors.New("the distribution cannot be deleted because annexes of other contracts add hours to it")
	ErrHoursNotPositive    = errors.New("hours must be greater than zero")
	ErrHoursPrecision      = errors.New("hours must not have more than two decimal places")
)

// Reallocation errors
var (
	ErrSameBucket            = errors.New("the source and destination buckets must be different")
	ErrFixedBucketImmutable  = errors.New("the fixed allocation bucket cannot take part in a reallocation")
	ErrInsufficientAvailable = errors.New("the source bucket does not have enough available hours")
	ErrReasonTooShort        = errors.New("the reason must be at least 10 characters long")
)

// Ledger errors
var (
	ErrInvalidLedgerStatus   = errors.New("the specified ledger status is invalid")
	ErrNotCancellationStatus = errors.New("only entries with status returned or penalized can be reclassified")
	ErrSameStatus            = errors.New("the entry already has the specified status")
	ErrOverrideReasonMissing = errors.New("a reason is required to override the cancellation status")
	ErrEntryNotInContract    = errors.New("the ledger entry does not belong to the specified contract")
)

// Cancellation clause errors
var (
	ErrInvalidCancelledBy = errors.New("cancelledBy must be one of school, fne or force_majeure")
	ErrNegativeNotice     = errors.New("the notice period must not be negative")
)
