package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sumEpsilon absorbs rounding differences when comparing hour sums.
var sumEpsilon = decimal.RequireFromString("0.005")

// maxBuckets is the number of hour types in the registry and therefore the
// maximum number of buckets one distribution can have.
const maxBuckets = 9

// Allocation assigns a number of hours of one hour type to a contract.
//
// A contract receives its full set of allocations in a single batch. An
// allocation with AddsToAllocationID set is an annex: it extends the bucket
// of an earlier contract instead of opening a bucket of its own.
type Allocation struct {
	DefaultModel
	ContractID         uuid.UUID       `json:"contractId" gorm:"uniqueIndex:allocation_contract_hour_type"`
	Contract           Contract        `json:"-"`
	HourTypeID         uuid.UUID       `json:"hourTypeId" gorm:"uniqueIndex:allocation_contract_hour_type"`
	HourType           HourType        `json:"-"`
	AllocatedHours     decimal.Decimal `json:"allocatedHours" gorm:"type:DECIMAL(10,2)" example:"10"`
	IsFixedAllocation  bool            `json:"isFixedAllocation" example:"false"`
	AddsToAllocationID *uuid.UUID      `json:"addsToAllocationId"` // Set for annexes: the primary allocation this one extends
	CreatedBy          uuid.UUID       `json:"createdBy"`
}

// AllocationItem is one bucket of a requested distribution.
type AllocationItem struct {
	HourTypeKey      string          // Registry key of the hour type
	Hours            decimal.Decimal // Hours allocated to this bucket
	IsFixed          bool            // Whether this is the fixed allocation
	AddsToContractID *uuid.UUID      // When set, this item is an annex extending the bucket of that contract
}

// AllocationsForContract returns all allocations created by the contract,
// annexes included.
func AllocationsForContract(contractID uuid.UUID) ([]Allocation, error) {
	var allocations []Allocation

	err := DB.Where(&Allocation{ContractID: contractID}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// primaryAllocation resolves the non-annex allocation of a contract for one
// hour type.
func primaryAllocation(db *gorm.DB, contractID, hourTypeID uuid.UUID) (Allocation, error) {
	var allocation Allocation

	err := db.Where(&Allocation{ContractID: contractID, HourTypeID: hourTypeID}).
		Where("adds_to_allocation_id IS NULL").
		First(&allocation).Error
	if err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}

// CreateAllocations distributes the contracted hours of a contract into
// buckets as a single atomic batch.
//
// All preconditions are verified before anything is written: the contract
// must be active with contracted hours set, must not have a distribution yet,
// every key must resolve to an active hour type at most once, the fixed flag
// is only valid for the designated hour type, annex parents must exist, and
// the submitted hours must sum to the contracted hours within 0.005.
func CreateAllocations(contractID uuid.UUID, items []AllocationItem, createdBy uuid.UUID) ([]Allocation, error) {
	contract, err := ContractByID(contractID)
	if err != nil {
		return nil, err
	}

	err = contract.checkMutable()
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNoAllocationItems
	}

	if len(items) > maxBuckets {
		return nil, fmt.Errorf("%w (at most %d)", ErrTooManyItems, maxBuckets)
	}

	// A second distribution is a conflict, regardless of its content
	var existing int64
	err = DB.Model(&Allocation{}).Where(&Allocation{ContractID: contractID}).Count(&existing).Error
	if err != nil {
		return nil, err
	}

	if existing > 0 {
		return nil, ErrAlreadyAllocated
	}

	sum := decimal.Zero
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		if item.Hours.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %q", ErrHoursNotPositive, item.HourTypeKey)
		}

		if item.Hours.Exponent() < -2 {
			return nil, fmt.Errorf("%w: %q", ErrHoursPrecision, item.HourTypeKey)
		}

		if seen[item.HourTypeKey] {
			return nil, fmt.Errorf("%w: %q appears more than once", ErrDuplicateHourType, item.HourTypeKey)
		}
		seen[item.HourTypeKey] = true

		sum = sum.Add(item.Hours)
	}

	// Annex hours count towards the sum of the contract that creates them
	if sum.Sub(contract.ContractedHours).Abs().GreaterThan(sumEpsilon) {
		return nil, fmt.Errorf("%w: distributed %s, contracted %s", ErrSumMismatch, sum, contract.ContractedHours)
	}

	allocations := make([]Allocation, 0, len(items))

	for _, item := range items {
		hourType, err := HourTypeByKey(item.HourTypeKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, item.HourTypeKey)
		}

		if item.IsFixed && !hourType.IsFixedEligible {
			return nil, fmt.Errorf("%w: %q", ErrFixedNotAllowed, item.HourTypeKey)
		}

		allocation := Allocation{
			ContractID:        contractID,
			HourTypeID:        hourType.ID,
			AllocatedHours:    item.Hours,
			IsFixedAllocation: item.IsFixed,
			CreatedBy:         createdBy,
		}

		if item.AddsToContractID != nil {
			parent, err := primaryAllocation(DB, *item.AddsToContractID, hourType.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrAnnexParentNotFound, item.HourTypeKey)
			}

			parentID := parent.ID
			allocation.AddsToAllocationID = &parentID
		}

		allocations = append(allocations, allocation)
	}

	// One transaction so a mid-batch failure never leaves a partial bucket set
	err = DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&allocations).Error
	})
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// DeleteAllocations removes the full distribution of a contract and returns
// the number of deleted allocations.
//
// Deletion is only possible while no ledger entry references any of the
// allocations and no annex of another contract adds hours to them.
func DeleteAllocations(contractID uuid.UUID) (int64, error) {
	allocations, err := AllocationsForContract(contractID)
	if err != nil {
		return 0, err
	}

	if len(allocations) == 0 {
		return 0, fmt.Errorf("%w allocation matching your query", ErrResourceNotFound)
	}

	ids := make([]uuid.UUID, 0, len(allocations))
	for _, allocation := range allocations {
		ids = append(ids, allocation.ID)
	}

	var ledgerCount int64
	err = DB.Model(&LedgerEntry{}).Where("allocation_id IN ?", ids).Count(&ledgerCount).Error
	if err != nil {
		return 0, err
	}

	if ledgerCount > 0 {
		return 0, ErrLedgerEntriesExist
	}

	var annexCount int64
	err = DB.Model(&Allocation{}).
		Where("adds_to_allocation_id IN ?", ids).
		Where("contract_id != ?", contractID).
		Count(&annexCount).Error
	if err != nil {
		return 0, err
	}

	if annexCount > 0 {
		return 0, ErrAnnexesReferencing
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		return tx.Where("contract_id = ?", contractID).Delete(&Allocation{}).Error
	})
	if err != nil {
		return 0, err
	}

	return int64(len(allocations)), nil
}
