package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// UpdatePersonUseCase merges a partial payload onto the stored record and
// re-runs the full validation pipeline against the merged result. Warnings
// from the rule engine ride along with the successful response.
type UpdatePersonUseCase struct {
	persons       ports.TemporaryPersonRepository
	documentTypes ports.DocumentTypeRepository
	uow           ports.UnitOfWork
}

// NewUpdatePersonUseCase wires the use case with its ports.
func NewUpdatePersonUseCase(
	persons ports.TemporaryPersonRepository,
	documentTypes ports.DocumentTypeRepository,
	uow ports.UnitOfWork,
) *UpdatePersonUseCase {
	return &UpdatePersonUseCase{
		persons:       persons,
		documentTypes: documentTypes,
		uow:           uow,
	}
}

// patchInput folds the command's supplied fields (including legacy aliases)
// into a canonical partial shape. Fields the caller did not send stay zero.
func patchInput(cmd dtos.UpdatePersonCommand) validation.PersonInput {
	patch := validation.PersonInput{
		Identification: cmd.Identification,
		Email:          cmd.Email,
		Phone:          cmd.Phone,
		BirthDate:      cmd.BirthDate,
		Age:            cmd.Age,
		Team:           cmd.Team,
		Category:       cmd.Category,
		DocumentTypeID: cmd.DocumentTypeID,
		FullName:       cmd.FullName,
		Estado:         cmd.Estado,
		TipoPersona:    cmd.TipoPersona,
	}
	if cmd.FirstName != nil {
		patch.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		patch.LastName = *cmd.LastName
	}
	if cmd.PersonType != nil {
		patch.PersonType = *cmd.PersonType
	}
	if cmd.Status != nil {
		patch.Status = *cmd.Status
	}
	return validation.NormalizePerson(patch)
}

// mergeInput overlays the supplied patch onto the stored shape. Absent patch
// members keep the stored value; a supplied-but-blank optional survives so
// the blank-after-trim rule can see it.
func mergeInput(stored, patch validation.PersonInput) validation.PersonInput {
	merged := stored
	if patch.FirstName != "" {
		merged.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		merged.LastName = patch.LastName
	}
	if patch.Identification != nil {
		merged.Identification = patch.Identification
	}
	if patch.Email != nil {
		merged.Email = patch.Email
	}
	if patch.Phone != nil {
		merged.Phone = patch.Phone
	}
	if patch.PersonType != "" {
		merged.PersonType = patch.PersonType
	}
	if patch.BirthDate != nil {
		merged.BirthDate = patch.BirthDate
	}
	if patch.Age != nil {
		merged.Age = patch.Age
	}
	if patch.Team != nil {
		merged.Team = patch.Team
	}
	if patch.Category != nil {
		merged.Category = patch.Category
	}
	if patch.Status != "" {
		merged.Status = patch.Status
	}
	if patch.DocumentTypeID != nil {
		merged.DocumentTypeID = patch.DocumentTypeID
	}
	return merged
}

// Execute applies a partial update after re-running the full pipeline.
func (uc *UpdatePersonUseCase) Execute(ctx context.Context, cmd dtos.UpdatePersonCommand) (*dtos.PersonUpdatedDTO, error) {
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return nil, errors.ValidationErrors{{Field: "id", Message: "must be a valid UUID", RejectedValue: cmd.ID}}
	}

	var result *dtos.PersonUpdatedDTO
	err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
		prior, err := uc.persons.FindByID(txCtx, id)
		if err != nil {
			if ports.IsRepoNotFound(err) {
				return errors.NewNotFoundError("temporary person", cmd.ID)
			}
			return errors.NewInternalError("person lookup", err)
		}

		merged := validation.NormalizePerson(mergeInput(inputFromPerson(prior), patchInput(cmd)))

		fields, fieldErrs := validation.ValidatePersonFields(merged)
		if fieldErrs.HasErrors() {
			return fieldErrs
		}

		ruleErrs, warnings := validation.ValidatePersonRules(fields, prior, validation.ModeUpdate)
		if ruleErrs.HasErrors() {
			return ruleErrs
		}

		if fields.DocumentTypeID != nil {
			if _, err := uc.documentTypes.FindByID(txCtx, *fields.DocumentTypeID); err != nil {
				if ports.IsRepoNotFound(err) {
					return errors.ValidationErrors{{
						Field:         "documentTypeId",
						Message:       "unknown document type",
						RejectedValue: fields.DocumentTypeID.String(),
					}}
				}
				return errors.NewInternalError("document type lookup", err)
			}
		}

		// Uniqueness pre-checks exclude the record's own id: updating a
		// record to its current identification or email is always allowed.
		if fields.Identification != nil && *fields.Identification != "" {
			taken, err := uc.persons.ExistsByIdentification(txCtx, *fields.Identification, &id)
			if err != nil {
				return errors.NewInternalError("identification uniqueness check", err)
			}
			if taken {
				return errors.NewConflictError("identification", *fields.Identification)
			}
		}
		if fields.Email != nil && *fields.Email != "" {
			taken, err := uc.persons.ExistsByEmail(txCtx, *fields.Email, &id)
			if err != nil {
				return errors.NewInternalError("email uniqueness check", err)
			}
			if taken {
				return errors.NewConflictError("email", *fields.Email)
			}
		}

		prior.Update(attrsFromFields(fields))

		if err := uc.persons.Save(txCtx, prior); err != nil {
			return translateSaveError(err, fields)
		}

		result = &dtos.PersonUpdatedDTO{
			Person:   dtos.ToPersonDTO(prior),
			Message:  "Temporary person updated successfully",
			Warnings: warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
