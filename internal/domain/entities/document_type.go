package entities

import "github.com/google/uuid"

// DocumentType is an external lookup entity referenced by temporary persons.
// Read-only in this core: id and display name only.
type DocumentType struct {
	id   uuid.UUID
	name string
}

// ReconstructDocumentType rebuilds a document type from stored data.
func ReconstructDocumentType(id uuid.UUID, name string) *DocumentType {
	return &DocumentType{id: id, name: name}
}

// ID returns the document type identity.
func (d *DocumentType) ID() uuid.UUID { return d.id }

// Name returns the display name.
func (d *DocumentType) Name() string { return d.name }
