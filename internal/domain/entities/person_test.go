package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/domain/errors"
)

func TestNewTemporaryPerson(t *testing.T) {
	t.Run("defaults to ACTIVE", func(t *testing.T) {
		p, err := NewTemporaryPerson(PersonAttrs{
			FirstName: "Juan", LastName: "Pérez", PersonType: PersonTypeAthlete,
		})
		require.NoError(t, err)
		assert.Equal(t, PersonStatusActive, p.Status())
		assert.NotEqual(t, uuid.Nil, p.ID())
	})

	t.Run("rejects missing names and unknown type together", func(t *testing.T) {
		_, err := NewTemporaryPerson(PersonAttrs{PersonType: "WIZARD"})
		require.Error(t, err)
		batch, ok := errors.AsValidationErrors(err)
		require.True(t, ok)
		assert.Len(t, batch, 3)
	})
}

func TestTemporaryPersonLifecycle(t *testing.T) {
	p, err := NewTemporaryPerson(PersonAttrs{
		FirstName: "Juan", LastName: "Pérez", PersonType: PersonTypeAthlete,
	})
	require.NoError(t, err)

	t.Run("delete blocked while active", func(t *testing.T) {
		err := p.CanHardDelete()
		require.Error(t, err)
		assert.True(t, errors.IsStateTransition(err))
		assert.Contains(t, err.Error(), "deactivate it first")
	})

	t.Run("delete allowed once inactive", func(t *testing.T) {
		p.Deactivate()
		assert.Equal(t, PersonStatusInactive, p.Status())
		assert.NoError(t, p.CanHardDelete())
	})

	t.Run("reactivation is free", func(t *testing.T) {
		p.Activate()
		assert.Equal(t, PersonStatusActive, p.Status())
		assert.Error(t, p.CanHardDelete())
	})
}

func TestReconstructTemporaryPerson(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	p := ReconstructTemporaryPerson(id, PersonAttrs{
		FirstName: "Ana", LastName: "Gómez",
		PersonType: PersonTypeTrainer, Status: PersonStatusInactive,
	}, created, updated)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, created, p.CreatedAt())
	assert.Equal(t, updated, p.UpdatedAt(), "reconstruction must not bump updatedAt")
	assert.Equal(t, PersonStatusInactive, p.Status())
}
