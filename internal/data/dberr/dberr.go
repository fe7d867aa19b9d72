// Package dberr turns driver errors into API errors.
package dberr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
)

// IsDuplicate reports a unique-index violation from any supported driver.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == "23505" {
		return true
	}
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "duplicate key")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Map converts err for entity into an *apierr.Error. Existing API errors pass
// through untouched.
func Map(entity string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return err
	}
	switch {
	case IsDuplicate(err):
		return apierr.New(http.StatusBadRequest, entity+" already exists", err)
	case IsNotFound(err):
		return apierr.New(http.StatusNotFound, entity+" not found", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apierr.New(http.StatusServiceUnavailable, "Request cancelled", err)
	}
	return apierr.Internal(err)
}
