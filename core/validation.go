package core

import (
	"fmt"
	"strings"

	"profilekit/models"
)

// Violations maps a JSON field path to the rule it broke.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) err() error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}

func required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// MaxProfileID is the largest id a caller may supply on create. It keeps ids
// exact in JSON number form and leaves room for every automatic id after it.
const MaxProfileID int64 = 1<<53 - 1

// suppliedID checks an optional caller-chosen id; zero means "assign one".
func suppliedID(id int64, v Violations) {
	switch {
	case id < 0:
		v["id"] = "must_not_be_negative"
	case id > MaxProfileID:
		v["id"] = "too_large"
	}
}

// normalizeKind accepts kind names in any letter case. An empty kind stays
// empty; an unknown one is reported and left as given.
func normalizeKind(kind models.ProfileKind, v Violations) models.ProfileKind {
	if kind == "" {
		return kind
	}
	k, ok := models.ParseProfileKind(string(kind))
	if !ok {
		v["kind"] = "unknown"
		return kind
	}
	return k
}

func positiveID(id int64, v Violations) {
	if id <= 0 {
		v["id"] = "must_be_positive"
	}
}

// validateHttpSettings checks the fields every Http profile must satisfy on
// create and on edit. Template strings are opaque and never inspected.
func validateHttpSettings(s models.HttpSettings, v Violations) {
	if len(s.Urls) == 0 {
		v["urls"] = "at_least_one_required"
	}
	for i, u := range s.Urls {
		if !strings.HasPrefix(u, "/") {
			v[fmt.Sprintf("urls[%d]", i)] = "must_start_with_slash"
		}
	}
	for i, h := range s.RequestHeaders {
		required(fmt.Sprintf("request_headers[%d].name", i), h.Name, v)
	}
	for i, c := range s.Cookies {
		required(fmt.Sprintf("cookies[%d].name", i), c.Name, v)
	}
}
