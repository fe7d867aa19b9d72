package dberr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
)

func TestIsDuplicateAcrossDrivers(t *testing.T) {
	cases := []error{
		gorm.ErrDuplicatedKey,
		fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}),
		&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"},
		errors.New("UNIQUE constraint failed: active_party.booth_id, active_party.party_id"),
	}
	for _, err := range cases {
		if !IsDuplicate(err) {
			t.Fatalf("IsDuplicate(%v) = false", err)
		}
	}
	if IsDuplicate(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a duplicate")
	}
}

func TestMap(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{gorm.ErrDuplicatedKey, http.StatusBadRequest, "ActiveParty already exists"},
		{gorm.ErrRecordNotFound, http.StatusNotFound, "ActiveParty not found"},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, "Request cancelled"},
		{errors.New("disk full"), http.StatusInternalServerError, "Server Error"},
	}
	for _, tc := range cases {
		got := apierr.As(Map("ActiveParty", tc.err))
		if got.Status != tc.status || got.Message != tc.message {
			t.Fatalf("Map(%v): got=%d %q want=%d %q", tc.err, got.Status, got.Message, tc.status, tc.message)
		}
	}
}

func TestMapPassesAPIErrorsThrough(t *testing.T) {
	in := apierr.MissingReference("Booth")
	if out := Map("ActiveParty", in); out != error(in) {
		t.Fatalf("api error should pass through unchanged, got %v", out)
	}
	if Map("X", nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}
