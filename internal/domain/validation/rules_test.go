package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/domain/entities"
)

func birthDateForAge(age int) *time.Time {
	// One month past the birthday, so the derived age is exactly age.
	d := time.Now().AddDate(-age, -1, 0)
	return &d
}

func TestValidatePersonRules_AgeCoherence(t *testing.T) {
	t.Run("within tolerance passes", func(t *testing.T) {
		rec := PersonFields{
			FirstName: "Juan", LastName: "Pérez",
			PersonType: entities.PersonTypeAthlete,
			BirthDate:  birthDateForAge(25),
			Age:        intp(24),
			Status:     entities.PersonStatusActive,
		}
		violations, _ := ValidatePersonRules(rec, nil, ModeCreate)
		assert.False(t, violations.HasErrors())
	})

	t.Run("beyond tolerance is blocking", func(t *testing.T) {
		rec := PersonFields{
			FirstName: "Juan", LastName: "Pérez",
			PersonType: entities.PersonTypeAthlete,
			BirthDate:  birthDateForAge(25),
			Age:        intp(30),
			Status:     entities.PersonStatusActive,
		}
		violations, _ := ValidatePersonRules(rec, nil, ModeCreate)
		require.True(t, violations.HasErrors())
		assert.Equal(t, "age", violations[0].Field)
	})
}

func TestValidatePersonRules_BlankAffiliation(t *testing.T) {
	t.Run("blank team for an athlete is rejected", func(t *testing.T) {
		rec := PersonFields{
			FirstName: "Juan", LastName: "Pérez",
			PersonType: entities.PersonTypeAthlete,
			Team:       strp(""),
			Status:     entities.PersonStatusActive,
		}
		violations, _ := ValidatePersonRules(rec, nil, ModeCreate)
		require.True(t, violations.HasErrors())
		assert.Equal(t, "team", violations[0].Field)
	})

	t.Run("omitted team is allowed", func(t *testing.T) {
		rec := PersonFields{
			FirstName: "Juan", LastName: "Pérez",
			PersonType: entities.PersonTypeAthlete,
			Status:     entities.PersonStatusActive,
		}
		violations, _ := ValidatePersonRules(rec, nil, ModeCreate)
		assert.False(t, violations.HasErrors())
	})

	t.Run("blank team for a participant is allowed", func(t *testing.T) {
		rec := PersonFields{
			FirstName: "Luis", LastName: "Mora",
			PersonType: entities.PersonTypeParticipant,
			Team:       strp(""),
			Status:     entities.PersonStatusActive,
		}
		violations, _ := ValidatePersonRules(rec, nil, ModeCreate)
		assert.False(t, violations.HasErrors())
	})
}

func TestValidatePersonRules_MinorIdentification(t *testing.T) {
	rec := PersonFields{
		FirstName: "Niño", LastName: "Prueba",
		PersonType:     entities.PersonTypeAthlete,
		Age:            intp(12),
		Identification: strp("123456789012345"),
		Status:         entities.PersonStatusActive,
	}

	t.Run("blocking on create", func(t *testing.T) {
		violations, warnings := ValidatePersonRules(rec, nil, ModeCreate)
		require.True(t, violations.HasErrors())
		assert.Equal(t, "identification", violations[0].Field)
		assert.Empty(t, warnings)
	})

	t.Run("advisory on update", func(t *testing.T) {
		prior, err := entities.NewTemporaryPerson(entities.PersonAttrs{
			FirstName: "Niño", LastName: "Prueba",
			PersonType: entities.PersonTypeAthlete,
		})
		require.NoError(t, err)

		violations, warnings := ValidatePersonRules(rec, prior, ModeUpdate)
		assert.False(t, violations.HasErrors())
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "identification longer than 11 characters")
	})
}

func TestValidatePersonRules_UpdateWarnings(t *testing.T) {
	prior, err := entities.NewTemporaryPerson(entities.PersonAttrs{
		FirstName: "Juan", LastName: "Pérez",
		PersonType: entities.PersonTypeAthlete,
		Status:     entities.PersonStatusActive,
	})
	require.NoError(t, err)

	rec := PersonFields{
		FirstName: "Juan", LastName: "Pérez",
		PersonType: entities.PersonTypeTrainer,
		Status:     entities.PersonStatusInactive,
	}

	violations, warnings := ValidatePersonRules(rec, prior, ModeUpdate)
	assert.False(t, violations.HasErrors())
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "deactivates the record")
	assert.Contains(t, warnings[1], "person type changed from ATHLETE to TRAINER")
}

func TestValidateCategoryRules(t *testing.T) {
	t.Run("inverted range rejected", func(t *testing.T) {
		violations := ValidateCategoryRules(CategoryFields{Name: "Sub-10", MinAge: 10, MaxAge: 8})
		require.True(t, violations.HasErrors())
		assert.Equal(t, "minAge", violations[0].Field)
	})

	t.Run("equal bounds rejected", func(t *testing.T) {
		violations := ValidateCategoryRules(CategoryFields{Name: "Sub-10", MinAge: 10, MaxAge: 10})
		assert.True(t, violations.HasErrors())
	})

	t.Run("valid range passes", func(t *testing.T) {
		violations := ValidateCategoryRules(CategoryFields{Name: "Sub-10", MinAge: 8, MaxAge: 10})
		assert.False(t, violations.HasErrors())
	})
}
