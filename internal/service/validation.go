package service

import (
	"strings"

	"github.com/lmartin/tennis-stats-service/internal/model"
)

// ValidatePlayer checks an untrusted create payload against the player rules
// and returns either a fully normalized Player or the complete list of field
// errors. It never short-circuits: every violation is collected in one pass
// so a client can fix the whole payload at once. On failure no partial
// player is returned.
//
// Normalization on success: string fields trimmed, countrycode upper-cased,
// last copied into a fresh slice. Running the result through validation
// again yields the identical value.
func ValidatePlayer(in model.PlayerInput) (model.Player, []FieldError) {
	var ferrs []FieldError
	var p model.Player

	if in.ID == nil {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "is required"})
	} else if *in.ID < 1 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be >= 1"})
	} else {
		p.ID = *in.ID
	}

	if in.Firstname == nil {
		ferrs = append(ferrs, FieldError{Field: "firstname", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Firstname); s == "" {
		ferrs = append(ferrs, FieldError{Field: "firstname", Message: "must not be empty"})
	} else {
		p.Firstname = s
	}

	if in.Lastname == nil {
		ferrs = append(ferrs, FieldError{Field: "lastname", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Lastname); s == "" {
		ferrs = append(ferrs, FieldError{Field: "lastname", Message: "must not be empty"})
	} else {
		p.Lastname = s
	}

	if in.Shortname == nil {
		ferrs = append(ferrs, FieldError{Field: "shortname", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Shortname); s == "" {
		ferrs = append(ferrs, FieldError{Field: "shortname", Message: "must not be empty"})
	} else {
		p.Shortname = s
	}

	// sex is matched exactly, no trimming: " M" is not a valid value.
	if in.Sex == nil {
		ferrs = append(ferrs, FieldError{Field: "sex", Message: "is required"})
	} else if *in.Sex != "M" && *in.Sex != "F" {
		ferrs = append(ferrs, FieldError{Field: "sex", Message: "must be M or F"})
	} else {
		p.Sex = *in.Sex
	}

	// Length counts runes, not bytes. Only the length is a validation rule;
	// casing is normalization (the store enforces the uppercase shape).
	if in.Countrycode == nil {
		ferrs = append(ferrs, FieldError{Field: "countrycode", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Countrycode); len([]rune(s)) != 3 {
		ferrs = append(ferrs, FieldError{Field: "countrycode", Message: "must be exactly 3 characters"})
	} else {
		p.Countrycode = strings.ToUpper(s)
	}

	if in.Countrypicture == nil {
		ferrs = append(ferrs, FieldError{Field: "countrypicture", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Countrypicture); s == "" {
		ferrs = append(ferrs, FieldError{Field: "countrypicture", Message: "must not be empty"})
	} else {
		p.Countrypicture = s
	}

	if in.Picture == nil {
		ferrs = append(ferrs, FieldError{Field: "picture", Message: "is required"})
	} else if s := strings.TrimSpace(*in.Picture); s == "" {
		ferrs = append(ferrs, FieldError{Field: "picture", Message: "must not be empty"})
	} else {
		p.Picture = s
	}

	if in.Rank == nil {
		ferrs = append(ferrs, FieldError{Field: "rank", Message: "is required"})
	} else if *in.Rank < 1 {
		ferrs = append(ferrs, FieldError{Field: "rank", Message: "must be >= 1"})
	} else {
		p.Rank = *in.Rank
	}

	if in.Points == nil {
		ferrs = append(ferrs, FieldError{Field: "points", Message: "is required"})
	} else if *in.Points < 0 {
		ferrs = append(ferrs, FieldError{Field: "points", Message: "must be >= 0"})
	} else {
		p.Points = *in.Points
	}

	if in.Weight == nil {
		ferrs = append(ferrs, FieldError{Field: "weight", Message: "is required"})
	} else if *in.Weight <= 0 {
		ferrs = append(ferrs, FieldError{Field: "weight", Message: "must be > 0"})
	} else {
		p.Weight = *in.Weight
	}

	if in.Height == nil {
		ferrs = append(ferrs, FieldError{Field: "height", Message: "is required"})
	} else if *in.Height <= 0 {
		ferrs = append(ferrs, FieldError{Field: "height", Message: "must be > 0"})
	} else {
		p.Height = *in.Height
	}

	if in.Age == nil {
		ferrs = append(ferrs, FieldError{Field: "age", Message: "is required"})
	} else if *in.Age <= 0 {
		ferrs = append(ferrs, FieldError{Field: "age", Message: "must be > 0"})
	} else {
		p.Age = *in.Age
	}

	// last must be present (JSON null does not count) and hold only 0/1.
	// Values outside that set are rejected here, never coerced.
	if in.Last == nil {
		ferrs = append(ferrs, FieldError{Field: "last", Message: "is required"})
	} else {
		valid := true
		for _, v := range *in.Last {
			if v != 0 && v != 1 {
				ferrs = append(ferrs, FieldError{Field: "last", Message: "elements must be 0 or 1"})
				valid = false
				break
			}
		}
		if valid {
			// fresh copy so the caller keeping the input slice cannot mutate the model
			p.Last = append([]int{}, (*in.Last)...)
		}
	}

	if len(ferrs) > 0 {
		return model.Player{}, ferrs
	}
	return p, nil
}
