package validation

import (
	"fmt"
	"time"

	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// PipelineMode distinguishes the create and update pipelines. The two differ
// in one deliberately unreconciled rule: see minor identification below.
type PipelineMode int

const (
	ModeCreate PipelineMode = iota
	ModeUpdate
)

const (
	// AgeToleranceYears is the maximum accepted divergence between a
	// supplied age and the age derived from the birth date.
	AgeToleranceYears = 1

	// adulthoodAge separates the minor identification heuristic.
	adulthoodAge = 18

	// minorIdentificationMaxLen is the longest identification expected for
	// a subject under 18.
	minorIdentificationMaxLen = 11

	minimumRoleAge = 5
)

// ResolveAge returns the effective age of the record: derived from the birth
// date when one is present, otherwise the explicitly supplied age, otherwise
// nil.
func ResolveAge(rec PersonFields) *int {
	if rec.BirthDate != nil {
		derived := DeriveAge(*rec.BirthDate, time.Now())
		return &derived
	}
	return rec.Age
}

// ValidatePersonRules runs the cross-field semantic checks on a normalized,
// field-validated record. For updates, prior is the stored record read
// immediately before the mutation; for creates it is nil.
//
// Returns the blocking violations and the non-blocking warnings. Blocking
// violations abort the pipeline; warnings ride along with a successful
// result.
func ValidatePersonRules(rec PersonFields, prior *entities.TemporaryPerson, mode PipelineMode) (errors.ValidationErrors, []string) {
	var violations errors.ValidationErrors
	var warnings []string

	// Age / birth-date coherence: when both are supplied, the derived age
	// may not diverge from the supplied age by more than the tolerance.
	if rec.BirthDate != nil && rec.Age != nil {
		derived := DeriveAge(*rec.BirthDate, time.Now())
		diff := derived - *rec.Age
		if diff < 0 {
			diff = -diff
		}
		if diff > AgeToleranceYears {
			violations.Add("age",
				fmt.Sprintf("supplied age %d does not match the birth date (derived age %d)", *rec.Age, derived),
				*rec.Age)
		}
	}

	effectiveAge := ResolveAge(rec)

	// Minimum age by role. Every role requires at least five years.
	if effectiveAge != nil && *effectiveAge < minimumRoleAge {
		violations.Add("age",
			fmt.Sprintf("%s must be at least %d years old", roleLabel(rec.PersonType), minimumRoleAge),
			*effectiveAge)
	}

	// Affiliation fields supplied for athletes and trainers must survive
	// trimming; omission is allowed.
	if rec.PersonType == entities.PersonTypeAthlete || rec.PersonType == entities.PersonTypeTrainer {
		if rec.Team != nil && *rec.Team == "" {
			violations.Add("team", "must not be blank when supplied", *rec.Team)
		}
		if rec.Category != nil && *rec.Category == "" {
			violations.Add("category", "must not be blank when supplied", *rec.Category)
		}
	}

	// Identification-format-by-age heuristic. The legacy system treats this
	// as blocking on create and advisory on update; both behaviors are kept
	// until the intended severity is confirmed.
	if effectiveAge != nil && *effectiveAge < adulthoodAge &&
		rec.Identification != nil && len(*rec.Identification) > minorIdentificationMaxLen {
		msg := fmt.Sprintf("identification longer than %d characters for a subject under %d",
			minorIdentificationMaxLen, adulthoodAge)
		if mode == ModeCreate {
			violations.Add("identification", msg, *rec.Identification)
		} else {
			warnings = append(warnings, msg)
		}
	}

	// Status-change and reclassification cautions on update: non-blocking,
	// surfaced alongside the successful result.
	if prior != nil {
		if prior.Status() == entities.PersonStatusActive && rec.Status == entities.PersonStatusInactive {
			warnings = append(warnings, "status change to INACTIVE deactivates the record")
		}
		if prior.PersonType() != rec.PersonType {
			warnings = append(warnings,
				fmt.Sprintf("person type changed from %s to %s", prior.PersonType(), rec.PersonType))
		}
	}

	return violations, warnings
}

func roleLabel(t entities.PersonType) string {
	switch t {
	case entities.PersonTypeAthlete:
		return "an athlete"
	case entities.PersonTypeTrainer:
		return "a trainer"
	case entities.PersonTypeParticipant:
		return "a participant"
	default:
		return "a person"
	}
}

// ValidateCategoryRules runs the cross-field checks on a sports category.
// The range invariant is rejected at creation and on every update, never
// only at delete time.
func ValidateCategoryRules(rec CategoryFields) errors.ValidationErrors {
	var violations errors.ValidationErrors

	if rec.MinAge >= rec.MaxAge {
		violations.Add("minAge",
			fmt.Sprintf("minimum age %d must be lower than maximum age %d", rec.MinAge, rec.MaxAge),
			rec.MinAge)
	}

	return violations
}
