package dtos

import (
	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/validation"
)

// ToPersonDTO converts a domain entity into its outward representation.
func ToPersonDTO(p *entities.TemporaryPerson) PersonDTO {
	dto := PersonDTO{
		ID:             p.ID().String(),
		FirstName:      p.FirstName(),
		LastName:       p.LastName(),
		Identification: p.Identification(),
		Email:          p.Email(),
		Phone:          p.Phone(),
		PersonType:     string(p.PersonType()),
		Age:            p.Age(),
		Team:           p.Team(),
		Category:       p.Category(),
		Status:         string(p.Status()),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
	if bd := p.BirthDate(); bd != nil {
		formatted := bd.Format(validation.DateLayout)
		dto.BirthDate = &formatted
	}
	if dt := p.DocumentTypeID(); dt != nil {
		id := dt.String()
		dto.DocumentTypeID = &id
	}
	return dto
}

// ToPersonDTOList converts a page of persons.
func ToPersonDTOList(persons []*entities.TemporaryPerson) []PersonDTO {
	result := make([]PersonDTO, len(persons))
	for i, p := range persons {
		result[i] = ToPersonDTO(p)
	}
	return result
}

// ToCategoryDTO converts a domain entity into its outward representation.
func ToCategoryDTO(c *entities.SportsCategory) CategoryDTO {
	return CategoryDTO{
		ID:               c.ID().String(),
		Name:             c.Name(),
		MinAge:           c.MinAge(),
		MaxAge:           c.MaxAge(),
		Status:           string(c.Status()),
		Published:        c.Published(),
		ImageURL:         c.ImageURL(),
		Description:      c.Description(),
		InscriptionCount: c.Usage().Inscriptions,
		ParticipantCount: c.Usage().Participants,
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

// ToCategoryDTOList converts a page of categories.
func ToCategoryDTOList(categories []*entities.SportsCategory) []CategoryDTO {
	result := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		result[i] = ToCategoryDTO(c)
	}
	return result
}

// BuildPageMeta computes the pagination metadata for one page.
func BuildPageMeta(page, limit, total int) PageMeta {
	if limit <= 0 {
		limit = 1
	}
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}
