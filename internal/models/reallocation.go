package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// minReasonLength is the minimum length of a reallocation reason.
const minReasonLength = 10

// ReallocationLogEntry is the append-only audit trail of hour movements
// between buckets.
type ReallocationLogEntry struct {
	ID             uuid.UUID       `json:"id"`
	ContractID     uuid.UUID       `json:"contractId"`
	FromHourTypeID uuid.UUID       `json:"fromHourTypeId"`
	ToHourTypeID   uuid.UUID       `json:"toHourTypeId"`
	Hours          decimal.Decimal `json:"hours" gorm:"type:DECIMAL(10,2)" example:"5"`
	Reason         string          `json:"reason" example:"Colegio solicita más coaching individual"`
	CreatedBy      uuid.UUID       `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BeforeCreate generates the ID for the audit entry.
func (r *ReallocationLogEntry) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}

// lockForUpdate adds a row lock on databases that support it. On sqlite the
// single connection already serializes transactions.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return db
}

// bucketAvailable computes the available hours of a bucket from its primary
// allocation inside the passed transaction.
func bucketAvailable(tx *gorm.DB, primary Allocation) (decimal.Decimal, error) {
	var annexes []Allocation
	err := tx.Where("adds_to_allocation_id = ?", primary.ID).Find(&annexes).Error
	if err != nil {
		return decimal.Zero, err
	}

	ids := []uuid.UUID{primary.ID}
	annexHours := decimal.Zero
	for _, annex := range annexes {
		ids = append(ids, annex.ID)
		annexHours = annexHours.Add(annex.AllocatedHours)
	}

	var entries []LedgerEntry
	err = tx.Where("allocation_id IN ?", ids).
		Where("status IN ?", []LedgerStatus{StatusReserved, StatusConsumed}).
		Find(&entries).Error
	if err != nil {
		return decimal.Zero, err
	}

	available := primary.AllocatedHours.Add(annexHours)
	for _, entry := range entries {
		available = available.Sub(entry.Hours)
	}

	return available, nil
}

// Reallocate moves hours between two buckets of a contract.
//
// The source must have enough available hours, and the fixed allocation
// bucket can neither give nor receive. Both allocation updates happen inside
// one transaction with the rows locked, so the contract's total allocated
// hours are preserved even under concurrent requests.
//
// The audit entry is written after the commit, best effort: losing it never
// reverts the already applied movement.
func Reallocate(contractID uuid.UUID, fromKey, toKey string, hours decimal.Decimal, reason string, actor uuid.UUID) ([]BucketSummary, error) {
	if fromKey == toKey {
		return nil, ErrSameBucket
	}

	if fromKey == FixedAllocationKey || toKey == FixedAllocationKey {
		return nil, ErrFixedBucketImmutable
	}

	if hours.LessThanOrEqual(decimal.Zero) {
		return nil, ErrHoursNotPositive
	}

	if hours.Exponent() < -2 {
		return nil, ErrHoursPrecision
	}

	if len(strings.TrimSpace(reason)) < minReasonLength {
		return nil, ErrReasonTooShort
	}

	contract, err := ContractByID(contractID)
	if err != nil {
		return nil, err
	}

	err = contract.checkMutable()
	if err != nil {
		return nil, err
	}

	fromType, err := HourTypeByKey(fromKey)
	if err != nil {
		return nil, err
	}

	toType, err := HourTypeByKey(toKey)
	if err != nil {
		return nil, err
	}

	var logEntry ReallocationLogEntry

	err = DB.Transaction(func(tx *gorm.DB) error {
		source, err := primaryAllocation(lockForUpdate(tx), contractID, fromType.ID)
		if err != nil {
			return err
		}

		destination, err := primaryAllocation(lockForUpdate(tx), contractID, toType.ID)
		if err != nil {
			return err
		}

		available, err := bucketAvailable(tx, source)
		if err != nil {
			return err
		}

		if available.LessThan(hours) {
			return fmt.Errorf("%w: %s available, %s requested", ErrInsufficientAvailable, available, hours)
		}

		err = tx.Model(&source).
			Update("allocated_hours", source.AllocatedHours.Sub(hours)).Error
		if err != nil {
			return err
		}

		err = tx.Model(&destination).
			Update("allocated_hours", destination.AllocatedHours.Add(hours)).Error
		if err != nil {
			return err
		}

		logEntry = ReallocationLogEntry{
			ContractID:     contractID,
			FromHourTypeID: fromType.ID,
			ToHourTypeID:   toType.ID,
			Hours:          hours,
			Reason:         strings.TrimSpace(reason),
			CreatedBy:      actor,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	err = DB.Create(&logEntry).Error
	if err != nil {
		// The movement is already committed. Losing the audit entry is
		// accepted, see the function documentation.
		log.Error().Err(err).
			Str("contract", contractID.String()).
			Str("from", fromKey).
			Str("to", toKey).
			Msg("could not write reallocation log entry")
	}

	return BucketSummaries(contractID)
}

// ReallocationLog returns the audit trail of a contract, newest first.
func ReallocationLog(contractID uuid.UUID) ([]ReallocationLogEntry, error) {
	var entries []ReallocationLogEntry

	err := DB.Where(&ReallocationLogEntry{ContractID: contractID}).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
