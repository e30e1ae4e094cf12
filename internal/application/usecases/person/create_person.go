package person

import (
	"context"
	"fmt"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// CreatePersonUseCase runs the full creation pipeline for a temporary
// person. The uniqueness pre-checks and the write share one transaction;
// the storage constraints stay authoritative under concurrent writers.
type CreatePersonUseCase struct {
	persons       ports.TemporaryPersonRepository
	documentTypes ports.DocumentTypeRepository
	uow           ports.UnitOfWork
}

// NewCreatePersonUseCase wires the use case with its ports.
func NewCreatePersonUseCase(
	persons ports.TemporaryPersonRepository,
	documentTypes ports.DocumentTypeRepository,
	uow ports.UnitOfWork,
) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		persons:       persons,
		documentTypes: documentTypes,
		uow:           uow,
	}
}

// Execute validates, normalizes and stores a new temporary person.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, cmd dtos.CreatePersonCommand) (*dtos.PersonCreatedDTO, error) {
	norm := validation.NormalizePerson(cmd.PersonInput)

	fields, fieldErrs := validation.ValidatePersonFields(norm)
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	ruleErrs, _ := validation.ValidatePersonRules(fields, nil, validation.ModeCreate)
	if ruleErrs.HasErrors() {
		return nil, ruleErrs
	}

	var result *dtos.PersonCreatedDTO
	err := uc.uow.Execute(ctx, func(txCtx context.Context) error {
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

		if fields.Identification != nil && *fields.Identification != "" {
			taken, err := uc.persons.ExistsByIdentification(txCtx, *fields.Identification, nil)
			if err != nil {
				return errors.NewInternalError("identification uniqueness check", err)
			}
			if taken {
				return errors.NewConflictError("identification", *fields.Identification)
			}
		}

		if fields.Email != nil && *fields.Email != "" {
			taken, err := uc.persons.ExistsByEmail(txCtx, *fields.Email, nil)
			if err != nil {
				return errors.NewInternalError("email uniqueness check", err)
			}
			if taken {
				return errors.NewConflictError("email", *fields.Email)
			}
		}

		p, err := entities.NewTemporaryPerson(attrsFromFields(fields))
		if err != nil {
			return err
		}

		if err := uc.persons.Save(txCtx, p); err != nil {
			return translateSaveError(err, fields)
		}

		result = &dtos.PersonCreatedDTO{
			Person: dtos.ToPersonDTO(p),
			Message: fmt.Sprintf("Temporary person %s %s created successfully",
				p.FirstName(), p.LastName()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
