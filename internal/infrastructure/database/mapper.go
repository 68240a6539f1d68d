package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"translatable/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func collectEntries(rows pgx.Rows) ([]entities.TranslationEntry, error) {
	var out []entities.TranslationEntry
	for rows.Next() {
		var (
			e                    entities.TranslationEntry
			id                   int64
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &e.EntityAlias, &e.EntityID, &e.Locale, &e.Field, &e.Value, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		e.ID = uint(id)
		e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	return out, nil
}
