package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kasarab/user_directory_service/internal/core/domain"
)

const dateLayout = "02-01-2006"

var errInvalidUserID = errors.New("User id must be a positive integer")

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAgeNotEligible,
		domain.KindEmailAlreadyExists,
		domain.KindInvalidEmailFormat,
		domain.KindInvalidDateRange,
		domain.KindInvalidPageRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidUserID
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
