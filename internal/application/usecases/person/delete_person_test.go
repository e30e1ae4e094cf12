package person

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

func TestDeletePerson_BlockedWhileActive(t *testing.T) {
	stored := activeAthlete(t)
	repo := repoWith(stored)
	uc := NewDeletePersonUseCase(repo, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeletePersonCommand{ID: stored.ID().String()})
	require.Error(t, err)
	assert.True(t, errors.IsStateTransition(err))
	assert.Contains(t, err.Error(), "deactivate it first")
	assert.Empty(t, repo.deleted, "guard rejection must not reach the delete")
}

func TestDeletePerson_AllowedWhenInactive(t *testing.T) {
	stored := activeAthlete(t)
	stored.Deactivate()
	repo := repoWith(stored)
	uc := NewDeletePersonUseCase(repo, fakeUOW{})

	result, err := uc.Execute(context.Background(), dtos.DeletePersonCommand{ID: stored.ID().String()})
	require.NoError(t, err)
	assert.Equal(t, "Temporary person Juan Pérez deleted successfully", result.Message)
	require.Len(t, repo.deleted, 1)
	assert.Equal(t, stored.ID(), repo.deleted[0])
}

func TestDeletePerson_NotFound(t *testing.T) {
	uc := NewDeletePersonUseCase(&fakePersonRepo{}, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeletePersonCommand{ID: uuid.NewString()})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeletePerson_InvalidID(t *testing.T) {
	uc := NewDeletePersonUseCase(&fakePersonRepo{}, fakeUOW{})

	_, err := uc.Execute(context.Background(), dtos.DeletePersonCommand{ID: "abc"})
	require.Error(t, err)
	_, ok := errors.AsValidationErrors(err)
	assert.True(t, ok)
}

func TestDeleteThenRecreateSameIdentification(t *testing.T) {
	// After a hard delete the identification is free again.
	stored := storedPerson(t, entities.PersonAttrs{
		FirstName: "Juan", LastName: "Pérez",
		Identification: strp("1017234567"),
		PersonType:     entities.PersonTypeAthlete,
	})
	stored.Deactivate()

	exists := true
	repo := repoWith(stored)
	repo.DeleteFn = func(context.Context, uuid.UUID) error {
		exists = false
		return nil
	}
	repo.ExistsByIdentificationFn = func(context.Context, string, *uuid.UUID) (bool, error) {
		return exists, nil
	}

	_, err := NewDeletePersonUseCase(repo, fakeUOW{}).
		Execute(context.Background(), dtos.DeletePersonCommand{ID: stored.ID().String()})
	require.NoError(t, err)

	_, err = NewCreatePersonUseCase(repo, &fakeDocTypeRepo{}, fakeUOW{}).
		Execute(context.Background(), dtos.CreatePersonCommand{
			PersonInput: validationInputWithIdent("1017234567"),
		})
	require.NoError(t, err)
}
