package models

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Modality describes how sessions of an hour type are delivered.
//
// swagger:enum Modality
type Modality string

const (
	ModalityPresencial Modality = "presencial"
	ModalityOnline     Modality = "online"
	ModalityBoth       Modality = "both"
)

// FixedAllocationKey is the only hour type that may be flagged as a fixed
// allocation. Its bucket is excluded from reallocations.
const FixedAllocationKey = "online_learning"

// HourType is a static registry entry describing one kind of service hours.
//
// The registry is reference data owned by contract management. It is seeded
// at migration time and never mutated by this backend.
type HourType struct {
	DefaultModel
	Key             string   `json:"key" gorm:"uniqueIndex" example:"coaching_individual"` // Stable identifier for the hour type
	DisplayName     string   `json:"displayName" example:"Coaching Individual"`            // Human readable name
	Modality        Modality `json:"modality" example:"presencial"`                        // How sessions of this type are delivered
	IsActive        bool     `json:"isActive" example:"true"`                              // Inactive types cannot be used in new distributions
	IsFixedEligible bool     `json:"isFixedEligible" example:"false"`                      // Whether is_fixed_allocation may be set for this type
}

// defaultHourTypes is the canonical registry. Display names are the
// user-facing Spanish terms of the service contracts.
var defaultHourTypes = []HourType{
	{Key: "coaching_individual", DisplayName: "Coaching Individual", Modality: ModalityBoth, IsActive: true},
	{Key: "coaching_grupal", DisplayName: "Coaching Grupal", Modality: ModalityBoth, IsActive: true},
	{Key: "talleres_presenciales", DisplayName: "Talleres Presenciales", Modality: ModalityPresencial, IsActive: true},
	{Key: "talleres_online", DisplayName: "Talleres Online", Modality: ModalityOnline, IsActive: true},
	{Key: "visitas_aula", DisplayName: "Visitas de Aula", Modality: ModalityPresencial, IsActive: true},
	{Key: "reunion_equipo", DisplayName: "Reuniones de Equipo", Modality: ModalityBoth, IsActive: true},
	{Key: "seguimiento_directivo", DisplayName: "Seguimiento Directivo", Modality: ModalityBoth, IsActive: true},
	{Key: "planificacion", DisplayName: "Planificación", Modality: ModalityBoth, IsActive: true},
	{Key: "online_learning", DisplayName: "Online Learning", Modality: ModalityOnline, IsActive: true, IsFixedEligible: true},
}

// seedHourTypes inserts all registry entries that do not exist yet.
// Existing entries are never overwritten so that operators can adjust
// display names or deactivate types directly in the database.
func seedHourTypes(db *gorm.DB) error {
	for _, hourType := range defaultHourTypes {
		if hourType.DisplayName == "" {
			hourType.DisplayName = displayNameFromKey(hourType.Key)
		}

		err := db.Where(&HourType{Key: hourType.Key}).FirstOrCreate(&hourType).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// displayNameFromKey derives a readable name from a registry key,
// e.g. "visitas_aula" becomes "Visitas Aula".
func displayNameFromKey(key string) string {
	caser := cases.Title(language.Spanish)
	return caser.String(strings.ReplaceAll(key, "_", " "))
}

// ActiveHourTypes returns all active registry entries, sorted by key.
func ActiveHourTypes() ([]HourType, error) {
	var hourTypes []HourType

	err := DB.Where(&HourType{IsActive: true}).Order("key ASC").Find(&hourTypes).Error
	if err != nil {
		return nil, err
	}

	return hourTypes, nil
}

// HourTypeByKey resolves a registry key to its active entry.
// An unknown or inactive key returns ErrUnknownHourType.
func HourTypeByKey(key string) (HourType, error) {
	var hourType HourType

	err := DB.Where(&HourType{Key: key, IsActive: true}).First(&hourType).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return HourType{}, ErrUnknownHourType
		}
		return HourType{}, err
	}

	return hourType, nil
}
