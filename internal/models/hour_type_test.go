package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fne-platform/hours-backend/internal/models"
)

func (suite *TestSuiteStandard) TestHourTypesSeeded() {
	types, err := models.ActiveHourTypes()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), types, 9)

	// Sorted by key
	for i := 1; i < len(types); i++ {
		assert.Less(suite.T(), types[i-1].Key, types[i].Key)
	}

	keys := make(map[string]models.HourType, len(types))
	for _, t := range types {
		keys[t.Key] = t
	}

	for _, key := range []string{
		"coaching_grupal",
		"coaching_individual",
		"online_learning",
		"planificacion",
		"reunion_equipo",
		"seguimiento_directivo",
		"talleres_online",
		"talleres_presenciales",
		"visitas_aula",
	} {
		assert.Contains(suite.T(), keys, key)
	}

	// Only self-paced online learning may be marked as a fixed bucket
	for _, t := range types {
		assert.Equal(suite.T(), t.Key == models.FixedAllocationKey, t.IsFixedEligible, t.Key)
	}
}

func (suite *TestSuiteStandard) TestHourTypesSeededOnce() {
	// Reconnecting against the same database must not duplicate the catalog
	require.NoError(suite.T(), models.Connect(suite.dbFile))

	types, err := models.ActiveHourTypes()
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), types, 9)
}

func (suite *TestSuiteStandard) TestHourTypeByKey() {
	hourType, err := models.HourTypeByKey("coaching_individual")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "coaching_individual", hourType.Key)
	assert.Equal(suite.T(), models.ModalityBoth, hourType.Modality)

	_, err = models.HourTypeByKey("horas_extra")
	assert.ErrorIs(suite.T(), err, models.ErrUnknownHourType)
}
