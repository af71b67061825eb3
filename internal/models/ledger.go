package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LedgerStatus is the state of hours moved against an allocation.
//
// swagger:enum LedgerStatus
type LedgerStatus string

const (
	StatusReserved  LedgerStatus = "reserved"  // Hours set aside for a scheduled session
	StatusConsumed  LedgerStatus = "consumed"  // Hours used by a finalized session
	StatusReturned  LedgerStatus = "returned"  // Hours given back after a cancellation
	StatusPenalized LedgerStatus = "penalized" // Hours forfeited after a late cancellation
)

// ParseLedgerStatus validates a status string.
func ParseLedgerStatus(s string) (LedgerStatus, error) {
	switch LedgerStatus(s) {
	case StatusReserved, StatusConsumed, StatusReturned, StatusPenalized:
		return LedgerStatus(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidLedgerStatus, s)
}

// isCancellation reports whether the status is one of the two
// cancellation-class states.
func (s LedgerStatus) isCancellation() bool {
	return s == StatusReturned || s == StatusPenalized
}

// LedgerEntry records one movement of hours against an allocation.
//
// Entries are append-mostly: after creation, only the status of
// cancellation-class entries may be flipped, by an admin, with a reason.
type LedgerEntry struct {
	DefaultModel
	AllocationID        uuid.UUID       `json:"allocationId"`
	Allocation          Allocation      `json:"-"`
	SessionID           *uuid.UUID      `json:"sessionId"` // Nil for manual corrections
	Hours               decimal.Decimal `json:"hours" gorm:"type:DECIMAL(10,2)" example:"1.5"`
	Status              LedgerStatus    `json:"status" example:"consumed"`
	SessionDate         time.Time       `json:"sessionDate"`
	RecordedBy          uuid.UUID       `json:"recordedBy"`
	IsOverBudget        bool            `json:"isOverBudget" example:"false"`
	IsManual            bool            `json:"isManual" example:"false"`
	Notes               string          `json:"notes,omitempty"`
	CancellationClause  string          `json:"cancellationClause,omitempty" example:"clause_2"`
	AdminOverride       bool            `json:"adminOverride" example:"false"`
	AdminOverrideReason string          `json:"adminOverrideReason,omitempty"`
	UpdatedBy           *uuid.UUID      `json:"updatedBy"`
}

// CreateManualEntry records a manual correction against an allocation of the
// contract.
//
// Manual entries bypass budget checking: is_over_budget is always stamped
// false and is_manual true, regardless of the bucket state.
func CreateManualEntry(contractID, allocationID uuid.UUID, hours decimal.Decimal, status LedgerStatus, sessionDate time.Time, notes string, recordedBy uuid.UUID) (LedgerEntry, error) {
	if hours.LessThanOrEqual(decimal.Zero) {
		return LedgerEntry{}, ErrHoursNotPositive
	}

	if _, err := ParseLedgerStatus(string(status)); err != nil {
		return LedgerEntry{}, err
	}

	// The allocation has to belong to the contract the caller names
	var allocation Allocation
	err := DB.Where(&Allocation{ContractID: contractID}).First(&allocation, "id = ?", allocationID).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	entry := LedgerEntry{
		AllocationID: allocation.ID,
		Hours:        hours,
		Status:       status,
		SessionDate:  sessionDate,
		RecordedBy:   recordedBy,
		IsManual:     true,
		IsOverBudget: false,
		Notes:        strings.TrimSpace(notes),
	}

	err = DB.Create(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// OverrideCancellationStatus flips a cancellation-class entry between
// returned and penalized.
//
// Only those two states are reclassifiable, the new status must be the other
// one of the pair, and a reason is mandatory. The override is marked on the
// entry together with the acting admin.
func OverrideCancellationStatus(contractID, entryID uuid.UUID, newStatus LedgerStatus, reason string, actor uuid.UUID) (LedgerEntry, error) {
	if _, err := ParseLedgerStatus(string(newStatus)); err != nil {
		return LedgerEntry{}, err
	}

	if !newStatus.isCancellation() {
		return LedgerEntry{}, fmt.Errorf("%w: %q", ErrInvalidLedgerStatus, newStatus)
	}

	if strings.TrimSpace(reason) == "" {
		return LedgerEntry{}, ErrOverrideReasonMissing
	}

	var entry LedgerEntry
	err := DB.Preload("Allocation").First(&entry, "id = ?", entryID).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	if entry.Allocation.ContractID != contractID {
		return LedgerEntry{}, ErrEntryNotInContract
	}

	if !entry.Status.isCancellation() {
		return LedgerEntry{}, fmt.Errorf("%w, current status is %q", ErrNotCancellationStatus, entry.Status)
	}

	if entry.Status == newStatus {
		return LedgerEntry{}, ErrSameStatus
	}

	entry.Status = newStatus
	entry.AdminOverride = true
	entry.AdminOverrideReason = strings.TrimSpace(reason)
	entry.UpdatedBy = &actor

	err = DB.Model(&entry).
		Select("Status", "AdminOverride", "AdminOverrideReason", "UpdatedBy").
		Updates(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// EntriesQuery filters the ledger of one contract.
type EntriesQuery struct {
	ContractID uuid.UUID

	Key        string       // Bucket key, glob patterns allowed ("coaching_*")
	Status     LedgerStatus // Entry status
	RecordedBy uuid.UUID    // Author of the entry
	Consultor  uuid.UUID    // Consultant facilitating the referenced session
	Note       string       // Accent-insensitive substring of the notes

	// RestrictToConsultor limits results to entries whose session is
	// facilitated by this user. Used for facilitator-scoped reads.
	RestrictToConsultor *uuid.UUID

	Page      int  // 1-based page, defaults to 1
	PageSize  int  // defaults to 50
	OrderDesc bool // Sort by session date, newest first
}

// LedgerEntries returns one page of the contract's ledger and the total
// number of matching entries.
func LedgerEntries(q EntriesQuery) ([]LedgerEntry, int64, error) {
	// The join brings in the allocations table, which also has a created_at
	// column, so both order columns have to be qualified
	order := "ledger_entries.session_date ASC, ledger_entries.created_at ASC"
	if q.OrderDesc {
		order = "ledger_entries.session_date DESC, ledger_entries.created_at DESC"
	}

	db := DB.
		Preload("Allocation").
		Preload("Allocation.HourType").
		Joins("JOIN allocations ON allocations.id = ledger_entries.allocation_id").
		Where("allocations.contract_id = ?", q.ContractID).
		Order(order)

	if q.Status != "" {
		db = db.Where("ledger_entries.status = ?", q.Status)
	}

	if q.RecordedBy != uuid.Nil {
		db = db.Where("ledger_entries.recorded_by = ?", q.RecordedBy)
	}

	if q.Consultor != uuid.Nil {
		db = db.Joins("JOIN sessions ON sessions.id = ledger_entries.session_id").
			Where("sessions.consultor_id = ?", q.Consultor)
	}

	if q.RestrictToConsultor != nil {
		db = db.Joins("JOIN sessions scoped_sessions ON scoped_sessions.id = ledger_entries.session_id").
			Where("scoped_sessions.consultor_id = ?", *q.RestrictToConsultor)
	}

	var entries []LedgerEntry
	err := db.Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	// Key globbing and accent folding cannot be expressed portably in SQL,
	// so these two filters run over the already scoped result
	filtered := make([]LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if q.Key != "" && !glob.Glob(q.Key, entry.Allocation.HourType.Key) {
			continue
		}

		if q.Note != "" && !strings.Contains(foldAccents(strings.ToLower(entry.Notes)), foldAccents(strings.ToLower(q.Note))) {
			continue
		}

		filtered = append(filtered, entry)
	}

	total := int64(len(filtered))

	page := q.Page
	if page < 1 {
		page = 1
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []LedgerEntry{}, total, nil
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], total, nil
}

// foldAccents removes combining marks so that "Planificación" matches
// "planificacion".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}

// CreateReservation records reserved hours for a scheduled session.
//
// The session's duration is converted to hours and checked against the
// bucket's availability: a reservation exceeding it is still created, but
// stamped as over budget.
func CreateReservation(sessionID, recordedBy uuid.UUID) (LedgerEntry, error) {
	var session Session
	err := DB.First(&session, "id = ?", sessionID).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	hours := HoursFromMinutes(session.DurationMinutes)
	if hours.LessThanOrEqual(decimal.Zero) {
		return LedgerEntry{}, ErrHoursNotPositive
	}

	allocation, err := primaryAllocation(DB, session.ContractID, session.HourTypeID)
	if err != nil {
		return LedgerEntry{}, err
	}

	available, err := availableHours(session.ContractID, session.HourTypeID)
	if err != nil {
		return LedgerEntry{}, err
	}

	entry := LedgerEntry{
		AllocationID: allocation.ID,
		SessionID:    &session.ID,
		Hours:        hours,
		Status:       StatusReserved,
		SessionDate:  session.SessionDate,
		RecordedBy:   recordedBy,
		IsOverBudget: available.LessThan(hours),
	}

	err = DB.Create(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// CompleteReservation flips the reserved entry of a session to consumed when
// the session is finalized.
func CompleteReservation(sessionID, actor uuid.UUID) (LedgerEntry, error) {
	var entry LedgerEntry
	err := DB.Where(&LedgerEntry{Status: StatusReserved}).
		Where("session_id = ?", sessionID).
		First(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	entry.Status = StatusConsumed
	entry.UpdatedBy = &actor

	err = DB.Model(&entry).Select("Status", "UpdatedBy").Updates(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// HoursFromMinutes converts a duration to hours, rounded half up to two
// decimal places.
func HoursFromMinutes(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
