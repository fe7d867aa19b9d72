package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
)

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fieldErrors collects validation messages and reports them as one 400.
type fieldErrors struct {
	msgs []string
}

func (fe *fieldErrors) add(format string, args ...interface{}) {
	fe.msgs = append(fe.msgs, fmt.Sprintf(format, args...))
}

func (fe *fieldErrors) err() error {
	if len(fe.msgs) == 0 {
		return nil
	}
	return apierr.BadRequest("%s", strings.Join(fe.msgs, ", "))
}

// str applies an optional string to dst. On create a missing or blank required
// value is an error; on update only a present blank value is.
func (fe *fieldErrors) str(dst *string, src *string, field string, required, creating bool) {
	if src == nil {
		if required && creating && strings.TrimSpace(*dst) == "" {
			fe.add("%s is required", field)
		}
		return
	}
	v := strings.TrimSpace(*src)
	if required && v == "" {
		fe.add("%s is required", field)
		return
	}
	*dst = v
}

// enum applies an optional value restricted to allowed, storing the canonical spelling.
func (fe *fieldErrors) enum(dst *string, src *string, field string, allowed []string) {
	if src == nil {
		return
	}
	v := domain.Canonical(*src, allowed...)
	if v == "" {
		fe.add("%s must be one of: %s", field, strings.Join(allowed, ", "))
		return
	}
	*dst = v
}

// requiredRef applies a required reference and reports whether it was taken
// from the request, in which case the caller must verify it exists.
func (fe *fieldErrors) requiredRef(dst *uuid.UUID, src *uuid.UUID, present bool, field string, creating bool) bool {
	if !present {
		if creating && *dst == uuid.Nil {
			fe.add("%s is required", field)
		}
		return false
	}
	if src == nil || *src == uuid.Nil {
		fe.add("%s is required", field)
		return false
	}
	*dst = *src
	return true
}

// optionalRef applies an optional reference; an empty value clears it.
func optionalRef(dst **uuid.UUID, src *uuid.UUID, present bool) bool {
	if !present {
		return false
	}
	if src == nil || *src == uuid.Nil {
		*dst = nil
		return false
	}
	id := *src
	*dst = &id
	return true
}

func (fe *fieldErrors) percentage(dst *float64, src *float64, field string) {
	if src == nil {
		return
	}
	if *src < 0 || *src > 100 {
		fe.add("%s must be between 0 and 100", field)
		return
	}
	*dst = *src
}

func (fe *fieldErrors) nonNegative(dst *int, src *int, field string) {
	if src == nil {
		return
	}
	if *src < 0 {
		fe.add("%s cannot be negative", field)
		return
	}
	*dst = *src
}

func (fe *fieldErrors) nonNegativePtr(dst **int, src *int, field string) {
	if src == nil {
		return
	}
	if *src < 0 {
		fe.add("%s cannot be negative", field)
		return
	}
	v := *src
	*dst = &v
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *domain.StringList, src *[]string) {
	if src == nil {
		return
	}
	out := make([]string, 0, len(*src))
	for _, s := range *src {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}

// refID unwraps a decoded reference. present reports whether the key was sent.
func refID[T any](r *ref.Ref[T]) (id *uuid.UUID, present bool) {
	if r == nil {
		return nil, false
	}
	return r.Ptr(), true
}
