package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

// stateKey is the fixed identifier of the single persisted blob.
const stateKey = "event-timetable-data"

// TimetableRepository stores the whole serialized timetable as one
// jsonb row under a fixed key. It is overwritten wholesale on every
// mutation.
type TimetableRepository struct {
	db postgres.DB
}

func (repo *TimetableRepository) Get(ctx context.Context) ([]byte, error) {
	query := `
		SELECT data
		FROM timetable.state
		WHERE key = $1
	`

	var blob []byte
	err := repo.db.QueryRow(ctx, query, stateKey).Scan(&blob)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return blob, nil
}

func (repo *TimetableRepository) Upsert(ctx context.Context, blob []byte) error {
	query := `
		INSERT INTO timetable.state (key, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key)
		DO UPDATE SET data = $2::jsonb, updated_at = now()
	`

	_, err := repo.db.Exec(ctx, query, stateKey, string(blob))
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
