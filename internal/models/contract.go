package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus is the lifecycle state of a contract.
//
// swagger:enum ContractStatus
type ContractStatus string

const (
	ContractActive    ContractStatus = "activo"
	ContractPending   ContractStatus = "pendiente"
	ContractFinalized ContractStatus = "finalizado"
)

// School represents a client school. It is owned by school management and
// only read here to scope contract access.
type School struct {
	DefaultModel
	Name string `json:"name" example:"Colegio San Andrés"`
}

// Contract is the commercial agreement whose hours are distributed into
// buckets. Contracts are owned by contract management; this backend never
// creates or deletes them and only reads id, status, school and the total
// contracted hours.
type Contract struct {
	DefaultModel
	SchoolID        uuid.UUID       `json:"schoolId" example:"d1b4b8b2-8e3f-4c37-a1b9-1c2b0a1b2c3d"`
	School          School          `json:"-"`
	Name            string          `json:"name" example:"Contrato de Asesoría 2026"`
	Status          ContractStatus  `json:"status" example:"activo"`
	ContractedHours decimal.Decimal `json:"contractedHours" gorm:"type:DECIMAL(10,2)" example:"90"` // Total purchased service hours
}

// Session is a consulting session scheduled against a contract. Sessions are
// owned by session management; ledger entries reference them and facilitator
// scoping reads them.
type Session struct {
	DefaultModel
	ContractID      uuid.UUID `json:"contractId"`
	Contract        Contract  `json:"-"`
	ConsultorID     uuid.UUID `json:"consultorId"` // The consultant facilitating the session
	HourTypeID      uuid.UUID `json:"hourTypeId"`  // The bucket the session draws hours from
	HourType        HourType  `json:"-"`
	SessionDate     time.Time `json:"sessionDate"`
	Modality        Modality  `json:"modality" example:"online"`
	DurationMinutes int       `json:"durationMinutes" example:"90"`
}

// ContractByID loads a contract. A missing contract returns an error wrapping
// ErrResourceNotFound.
func ContractByID(id uuid.UUID) (Contract, error) {
	var contract Contract

	err := DB.First(&contract, "id = ?", id).Error
	if err != nil {
		return Contract{}, err
	}

	return contract, nil
}

// checkMutable verifies that the contract accepts hour distribution changes.
func (c Contract) checkMutable() error {
	if c.Status != ContractActive {
		return ErrContractNotActive
	}

	if c.ContractedHours.LessThanOrEqual(decimal.Zero) {
		return ErrNoContractedHours
	}

	return nil
}

// BelongsToSchools reports whether the contract belongs to one of the passed
// schools. It is used for school-scoped reads.
func (c Contract) BelongsToSchools(schoolIDs []uuid.UUID) bool {
	for _, id := range schoolIDs {
		if c.SchoolID == id {
			return true
		}
	}

	return false
}
