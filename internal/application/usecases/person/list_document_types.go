package person

import (
	"context"

	"github.com/clubarena/rosterhub/internal/application/dtos"
	"github.com/clubarena/rosterhub/internal/application/ports"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// ListDocumentTypesUseCase returns the document type catalog for clients to
// populate their selection widgets.
type ListDocumentTypesUseCase struct {
	documentTypes ports.DocumentTypeRepository
}

// NewListDocumentTypesUseCase wires the use case with its port.
func NewListDocumentTypesUseCase(documentTypes ports.DocumentTypeRepository) *ListDocumentTypesUseCase {
	return &ListDocumentTypesUseCase{documentTypes: documentTypes}
}

// Execute lists all document types.
func (uc *ListDocumentTypesUseCase) Execute(ctx context.Context) ([]dtos.DocumentTypeDTO, error) {
	types, err := uc.documentTypes.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("document type listing", err)
	}

	out := make([]dtos.DocumentTypeDTO, len(types))
	for i, t := range types {
		out[i] = dtos.DocumentTypeDTO{ID: t.ID().String(), Name: t.Name()}
	}
	return out, nil
}
