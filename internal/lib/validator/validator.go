// Package validator checks untyped movie payloads (as decoded from JSON) and
// converts them into typed domain values.
//
// Full validation requires every mandatory field and fills defaults; partial
// validation checks only the fields that are present. Neither performs I/O.
package validator

import (
	"encoding/json"
	"math"
	"movies/proj/internal/domain/models"
	"strings"

	govalidator "github.com/go-playground/validator/v10"
)

var (
	yearRule     = "gte=1900,lte=2024"
	durationRule = "gt=0"
	rateRule     = "gte=0,lte=10"
	posterRule   = "url"
	titleRule    = "required"
	genreRule    = "min=1,dive,oneof=" + strings.Join(genreTokens(), " ")
)

// maxSafeInt is the largest integer a JSON number carries without loss (2^53-1).
const maxSafeInt = 1<<53 - 1

func genreTokens() []string {
	tokens := make([]string, 0, len(models.Genres))
	for _, g := range models.Genres {
		tokens = append(tokens, string(g))
	}
	return tokens
}

type Validator struct {
	validate *govalidator.Validate
}

func New() *Validator {
	return &Validator{validate: govalidator.New(govalidator.WithRequiredStructEnabled())}
}

// ValidateFull checks input against the complete movie shape. Absent rate
// defaults to models.DefaultRate. Any caller-supplied id is ignored.
func (v *Validator) ValidateFull(input map[string]any) (*models.Movie, FieldErrors) {
	patch, errs := v.parse(input)
	for _, field := range []string{"title", "year", "director", "duration", "poster", "genre"} {
		if _, ok := input[field]; !ok {
			errs.Add(field, requiredMsg(field))
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	movie := patch.Apply(models.Movie{Rate: models.DefaultRate})
	return &movie, nil
}

// ValidatePartial checks only the fields present in input. Absent fields stay
// nil in the result; an input without recognized fields yields an empty patch.
func (v *Validator) ValidatePartial(input map[string]any) (*models.MoviePatch, FieldErrors) {
	patch, errs := v.parse(input)
	if len(errs) > 0 {
		return nil, errs
	}
	return &patch, nil
}

func (v *Validator) parse(input map[string]any) (models.MoviePatch, FieldErrors) {
	errs := FieldErrors{}
	var patch models.MoviePatch
	if raw, ok := input["title"]; ok {
		patch.Title = v.checkString(errs, "title", raw, titleRule)
	}
	if raw, ok := input["year"]; ok {
		patch.Year = v.checkInt(errs, "year", raw, yearRule)
	}
	if raw, ok := input["director"]; ok {
		patch.Director = v.checkString(errs, "director", raw, "")
	}
	if raw, ok := input["duration"]; ok {
		patch.Duration = v.checkInt(errs, "duration", raw, durationRule)
	}
	if raw, ok := input["rate"]; ok {
		patch.Rate = v.checkNumber(errs, "rate", raw, rateRule)
	}
	if raw, ok := input["poster"]; ok {
		patch.Poster = v.checkString(errs, "poster", raw, posterRule)
	}
	if raw, ok := input["genre"]; ok {
		patch.Genre = v.checkGenres(errs, "genre", raw)
	}
	return patch, errs
}

// apply runs a validator tag against value and records each failed rule.
func (v *Validator) apply(errs FieldErrors, field string, value any, tag string) bool {
	if tag == "" {
		return true
	}
	err := v.validate.Var(value, tag)
	if err == nil {
		return true
	}
	validationErrs, ok := err.(govalidator.ValidationErrors)
	if !ok {
		errs.Add(field, err.Error())
		return false
	}
	for _, e := range validationErrs {
		errs.Add(field, ruleMsg(field, e))
	}
	return false
}

func (v *Validator) checkString(errs FieldErrors, field string, raw any, tag string) *string {
	s, ok := raw.(string)
	if !ok {
		errs.Add(field, typeMsg(field, "string", raw))
		return nil
	}
	if !v.apply(errs, field, s, tag) {
		return nil
	}
	return &s
}

func (v *Validator) checkNumber(errs FieldErrors, field string, raw any, tag string) *float64 {
	n, ok := toFloat(raw)
	if !ok {
		errs.Add(field, typeMsg(field, "number", raw))
		return nil
	}
	if !v.apply(errs, field, n, tag) {
		return nil
	}
	return &n
}

// checkInt rejects fractional values instead of truncating them.
func (v *Validator) checkInt(errs FieldErrors, field string, raw any, tag string) *int {
	n, ok := toFloat(raw)
	if !ok {
		errs.Add(field, typeMsg(field, "number", raw))
		return nil
	}
	valid := true
	if n != math.Trunc(n) {
		errs.Add(field, intMsg())
		valid = false
	}
	// keeps int(n) below from overflowing
	if math.Abs(n) > maxSafeInt {
		errs.Add(field, safeIntMsg())
		valid = false
	}
	if !v.apply(errs, field, n, tag) {
		valid = false
	}
	if !valid {
		return nil
	}
	i := int(n)
	return &i
}

func (v *Validator) checkGenres(errs FieldErrors, field string, raw any) []models.Genre {
	items, ok := raw.([]any)
	if !ok {
		errs.Add(field, typeMsg(field, "array", raw))
		return nil
	}
	tokens := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			errs.Add(field, typeMsg(field, "array", raw))
			return nil
		}
		tokens = append(tokens, s)
	}
	if !v.apply(errs, field, tokens, genreRule) {
		return nil
	}
	genres := make([]models.Genre, 0, len(tokens))
	for _, s := range tokens {
		genres = append(genres, models.Genre(s))
	}
	return genres
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
