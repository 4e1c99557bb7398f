package validation

import (
	"database/sql"
	"time"
)

func GetStringFromNull(nullString sql.NullString) string {
	if nullString.Valid {
		return nullString.String
	}
	return ""
}

func GetTimeFromNull(nullTime sql.NullTime) *time.Time {
	if nullTime.Valid {
		return &nullTime.Time
	}
	return nil
}

func ParseStringToNullString(text string) sql.NullString {
	return sql.NullString{String: text, Valid: text != ""}
}
