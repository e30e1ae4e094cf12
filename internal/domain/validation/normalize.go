package validation

import "strings"

// PersonInput is a raw mutating request for a temporary person, expressed in
// any of the historical input shapes. Canonical fields first; the trailing
// block carries the legacy aliases the normalizer folds in.
type PersonInput struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Identification *string `json:"identification"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	PersonType     string  `json:"personType"`
	BirthDate      *string `json:"birthDate"`
	Age            *int    `json:"age"`
	Team           *string `json:"team"`
	Category       *string `json:"category"`
	Status         string  `json:"status"`
	DocumentTypeID *string `json:"documentTypeId"`

	// Legacy aliases from older clients. Used only when the canonical field
	// is absent; dropped after folding.
	FullName        string `json:"fullName,omitempty"`
	Nombre          string `json:"nombre,omitempty"`
	Apellido        string `json:"apellido,omitempty"`
	Correo          string `json:"correo,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	TipoPersona     string `json:"tipoPersona,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
	Equipo          string `json:"equipo,omitempty"`
	Estado          string `json:"estado,omitempty"`
}

// CategoryInput is a raw mutating request for a sports category.
type CategoryInput struct {
	Name        string  `json:"name"`
	MinAge      *int    `json:"minAge"`
	MaxAge      *int    `json:"maxAge"`
	Status      string  `json:"status"`
	Published   *bool   `json:"published"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`

	// Legacy aliases.
	Nombre      string `json:"nombre,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      string `json:"estado,omitempty"`
}

// Localized enum labels accepted from legacy clients.
var personTypeAliases = map[string]string{
	"ATHLETE":      "ATHLETE",
	"TRAINER":      "TRAINER",
	"PARTICIPANT":  "PARTICIPANT",
	"DEPORTISTA":   "ATHLETE",
	"ATLETA":       "ATHLETE",
	"ENTRENADOR":   "TRAINER",
	"PARTICIPANTE": "PARTICIPANT",
}

var statusAliases = map[string]string{
	"ACTIVE":   "ACTIVE",
	"INACTIVE": "INACTIVE",
	"ACTIVO":   "ACTIVE",
	"INACTIVO": "INACTIVE",
}

// collapseSpaces trims and collapses runs of inner whitespace to one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimPtr trims a supplied optional value, preserving the distinction
// between "absent" (nil) and "supplied but blank" (pointer to "").
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}

func mapAlias(aliases map[string]string, v string) string {
	if v == "" {
		return ""
	}
	if canonical, ok := aliases[strings.ToUpper(strings.TrimSpace(v))]; ok {
		return canonical
	}
	// Unknown values pass through untouched; the field validator rejects
	// them with the offending input intact.
	return strings.TrimSpace(v)
}

func strPtr(s string) *string { return &s }

// NormalizePerson reconciles the historical input shapes into the canonical
// one. Precedence: the canonical field wins when present; a legacy alias is
// used only when the canonical field is absent. The function never fails,
// silently drops unmappable legacy fields, and is idempotent: an already
// canonical input comes back unchanged.
func NormalizePerson(in PersonInput) PersonInput {
	out := in

	// Name: canonical split fields, then explicit legacy aliases, then the
	// combined full-name shape split on the first space group.
	if out.FirstName == "" && in.Nombre != "" {
		out.FirstName = in.Nombre
	}
	if out.LastName == "" && in.Apellido != "" {
		out.LastName = in.Apellido
	}
	if out.FirstName == "" && in.FullName != "" {
		parts := strings.Fields(in.FullName)
		if len(parts) > 0 {
			out.FirstName = parts[0]
		}
		if out.LastName == "" && len(parts) > 1 {
			out.LastName = strings.Join(parts[1:], " ")
		}
	}

	if out.Email == nil && in.Correo != "" {
		out.Email = strPtr(in.Correo)
	}
	if out.Phone == nil && in.Telefono != "" {
		out.Phone = strPtr(in.Telefono)
	}
	if out.PersonType == "" && in.TipoPersona != "" {
		out.PersonType = in.TipoPersona
	}
	if out.BirthDate == nil && in.FechaNacimiento != "" {
		out.BirthDate = strPtr(in.FechaNacimiento)
	}
	if out.Team == nil && in.Equipo != "" {
		out.Team = strPtr(in.Equipo)
	}
	if out.Status == "" && in.Estado != "" {
		out.Status = in.Estado
	}

	// Sanitize canonical values.
	out.FirstName = collapseSpaces(out.FirstName)
	out.LastName = collapseSpaces(out.LastName)
	out.Identification = trimPtr(out.Identification)
	out.Phone = trimPtr(out.Phone)
	out.Team = trimPtr(out.Team)
	out.Category = trimPtr(out.Category)
	out.BirthDate = trimPtr(out.BirthDate)
	out.DocumentTypeID = trimPtr(out.DocumentTypeID)
	if out.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*out.Email))
		out.Email = &lowered
	}

	out.PersonType = mapAlias(personTypeAliases, out.PersonType)
	out.Status = mapAlias(statusAliases, out.Status)

	// Legacy fields are consumed above and dropped from the canonical shape.
	out.FullName = ""
	out.Nombre = ""
	out.Apellido = ""
	out.Correo = ""
	out.Telefono = ""
	out.TipoPersona = ""
	out.FechaNacimiento = ""
	out.Equipo = ""
	out.Estado = ""

	return out
}

// NormalizeCategory is the category counterpart of NormalizePerson.
func NormalizeCategory(in CategoryInput) CategoryInput {
	out := in

	if out.Name == "" && in.Nombre != "" {
		out.Name = in.Nombre
	}
	if out.Description == nil && in.Descripcion != "" {
		out.Description = strPtr(in.Descripcion)
	}
	if out.Status == "" && in.Estado != "" {
		out.Status = in.Estado
	}

	out.Name = collapseSpaces(out.Name)
	out.Description = trimPtr(out.Description)
	out.ImageURL = trimPtr(out.ImageURL)
	out.Status = mapAlias(statusAliases, out.Status)

	out.Nombre = ""
	out.Descripcion = ""
	out.Estado = ""

	return out
}
