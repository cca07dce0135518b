package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	snapshotsTable = "feed_snapshots"

	colSnapshotKey = "snapshot_key"
	colPayload     = "payload"
	colItemCount   = "item_count"
	colUpdatedAt   = "updated_at"
)

func buildSelectSnapshotQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select(colPayload).
		From(snapshotsTable).
		Where(sq.Eq{colSnapshotKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select snapshot: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertSnapshotQuery builds a single-statement upsert, so a concurrent
// reader sees either the previous or the new payload.
func buildUpsertSnapshotQuery(b sq.StatementBuilderType, key string, payload []byte, itemCount int, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(snapshotsTable).
		Columns(colSnapshotKey, colPayload, colItemCount, colUpdatedAt).
		Values(key, string(payload), itemCount, now.UTC()).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s, %[4]s = excluded.%[4]s",
			colSnapshotKey, colPayload, colItemCount, colUpdatedAt,
		)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert snapshot: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSnapshotQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Delete(snapshotsTable).
		Where(sq.Eq{colSnapshotKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete snapshot: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
