package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BucketSource traces where the hours of a bucket come from. Buckets funded
// by several contracts list one source per contributing contract.
type BucketSource struct {
	ContractID uuid.UUID       `json:"contractId"`
	Hours      decimal.Decimal `json:"hours" example:"10"`
	IsAnnex    bool            `json:"isAnnex" example:"false"`
}

// BucketSummary is the derived state of one bucket of a contract.
type BucketSummary struct {
	HourTypeID  uuid.UUID       `json:"hourTypeId"`
	Key         string          `json:"key" example:"coaching_individual"`
	DisplayName string          `json:"displayName" example:"Coaching Individual"`
	Allocated   decimal.Decimal `json:"allocated" example:"20"`   // Hours the contract assigned to the bucket
	AnnexHours  decimal.Decimal `json:"annexHours" example:"5"`   // Hours added by annexes of later contracts
	Reserved    decimal.Decimal `json:"reserved" example:"1.5"`   // Sum of reserved ledger entries
	Consumed    decimal.Decimal `json:"consumed" example:"3"`     // Sum of consumed ledger entries
	Available   decimal.Decimal `json:"available" example:"20.5"` // allocated + annex - reserved - consumed
	IsFixed     bool            `json:"isFixed" example:"false"`
	Sources     []BucketSource  `json:"sources"`
}

// summarizeBuckets derives the per-bucket state from allocation and ledger
// rows.
//
// It is a pure function: given the same rows it always produces the same
// summaries and never touches the database. The allocations slice holds the
// contract's primary allocations plus any annexes referencing them, each
// with HourType preloaded on the primaries; entries may reference primary or
// annex allocations and are grouped into the primary's bucket either way.
func summarizeBuckets(allocations []Allocation, entries []LedgerEntry) []BucketSummary {
	// bucket index by primary allocation ID
	buckets := make(map[uuid.UUID]*BucketSummary)
	// allocation ID (primary or annex) -> primary allocation ID
	toPrimary := make(map[uuid.UUID]uuid.UUID)

	for _, allocation := range allocations {
		if allocation.AddsToAllocationID != nil {
			continue
		}

		toPrimary[allocation.ID] = allocation.ID
		buckets[allocation.ID] = &BucketSummary{
			HourTypeID:  allocation.HourTypeID,
			Key:         allocation.HourType.Key,
			DisplayName: allocation.HourType.DisplayName,
			Allocated:   allocation.AllocatedHours,
			AnnexHours:  decimal.Zero,
			Reserved:    decimal.Zero,
			Consumed:    decimal.Zero,
			IsFixed:     allocation.IsFixedAllocation,
			Sources: []BucketSource{{
				ContractID: allocation.ContractID,
				Hours:      allocation.AllocatedHours,
				IsAnnex:    false,
			}},
		}
	}

	for _, allocation := range allocations {
		if allocation.AddsToAllocationID == nil {
			continue
		}

		bucket, ok := buckets[*allocation.AddsToAllocationID]
		if !ok {
			continue
		}

		toPrimary[allocation.ID] = *allocation.AddsToAllocationID
		bucket.AnnexHours = bucket.AnnexHours.Add(allocation.AllocatedHours)
		bucket.Sources = append(bucket.Sources, BucketSource{
			ContractID: allocation.ContractID,
			Hours:      allocation.AllocatedHours,
			IsAnnex:    true,
		})
	}

	for _, entry := range entries {
		primaryID, ok := toPrimary[entry.AllocationID]
		if !ok {
			continue
		}

		bucket := buckets[primaryID]

		switch entry.Status {
		case StatusReserved:
			bucket.Reserved = bucket.Reserved.Add(entry.Hours)
		case StatusConsumed:
			bucket.Consumed = bucket.Consumed.Add(entry.Hours)
		}
	}

	summaries := make([]BucketSummary, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Available = bucket.Allocated.
			Add(bucket.AnnexHours).
			Sub(bucket.Reserved).
			Sub(bucket.Consumed)
		summaries = append(summaries, *bucket)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Key < summaries[j].Key
	})

	return summaries
}

// BucketSummaries computes the live bucket state of a contract.
func BucketSummaries(contractID uuid.UUID) ([]BucketSummary, error) {
	var primaries []Allocation
	err := DB.Preload("HourType").
		Where(&Allocation{ContractID: contractID}).
		Where("adds_to_allocation_id IS NULL").
		Find(&primaries).Error
	if err != nil {
		return nil, err
	}

	primaryIDs := make([]uuid.UUID, 0, len(primaries))
	for _, allocation := range primaries {
		primaryIDs = append(primaryIDs, allocation.ID)
	}

	allocations := primaries

	if len(primaryIDs) > 0 {
		var annexes []Allocation
		err = DB.Where("adds_to_allocation_id IN ?", primaryIDs).Find(&annexes).Error
		if err != nil {
			return nil, err
		}

		allocations = append(allocations, annexes...)
	}

	allocationIDs := make([]uuid.UUID, 0, len(allocations))
	for _, allocation := range allocations {
		allocationIDs = append(allocationIDs, allocation.ID)
	}

	var entries []LedgerEntry
	if len(allocationIDs) > 0 {
		err = DB.Where("allocation_id IN ?", allocationIDs).Find(&entries).Error
		if err != nil {
			return nil, err
		}
	}

	return summarizeBuckets(allocations, entries), nil
}

// availableHours returns the available hours of one bucket of a contract.
func availableHours(contractID, hourTypeID uuid.UUID) (decimal.Decimal, error) {
	summaries, err := BucketSummaries(contractID)
	if err != nil {
		return decimal.Zero, err
	}

	for _, bucket := range summaries {
		if bucket.HourTypeID == hourTypeID {
			return bucket.Available, nil
		}
	}

	return decimal.Zero, fmt.Errorf("%w allocation matching your query", ErrResourceNotFound)
}
