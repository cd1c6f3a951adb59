package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
)

// MediaStore keeps large binary attachments in their own database file so
// their lifecycle stays independent from the record partitions.
type MediaStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewMediaStore constructs a media store over an opened database.
func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db, now: time.Now}
}

type mediaRow struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	MimeType  string    `db:"mime_type"`
	Size      int64     `db:"size"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

func (r mediaRow) toModel() model.MediaFile {
	return model.MediaFile{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		MimeType:  r.MimeType,
		Size:      r.Size,
		Data:      r.Data,
		CreatedAt: r.CreatedAt,
	}
}

// Save stores the blob and returns its assigned id. The recorded size is the
// actual payload length regardless of what the caller supplied.
func (m *MediaStore) Save(ctx context.Context, ownerID string, f model.MediaFile) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO media_files (id, owner_id, name, mime_type, size, data, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = m.db.ExecContext(ctx, q,
		id.String(), ownerID, f.Name, f.MimeType, int64(len(f.Data)), f.Data, m.now().UTC())
	if err != nil {
		return "", fmt.Errorf("save media file: %w", err)
	}
	return id.String(), nil
}

// Get returns one blob with payload.
func (m *MediaStore) Get(ctx context.Context, id string) (*model.MediaFile, error) {
	var row mediaRow
	const q = `
SELECT id, owner_id, name, mime_type, size, data, created_at
FROM media_files WHERE id = ?`
	if err := m.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("get media file: %w", err)
	}
	f := row.toModel()
	return &f, nil
}

// ListByOwner returns the owner's blobs, metadata only.
func (m *MediaStore) ListByOwner(ctx context.Context, ownerID string) ([]model.MediaFile, error) {
	var rows []mediaRow
	const q = `
SELECT id, owner_id, name, mime_type, size, created_at
FROM media_files WHERE owner_id = ? ORDER BY created_at`
	if err := m.db.SelectContext(ctx, &rows, q, ownerID); err != nil {
		return nil, fmt.Errorf("list media files: %w", err)
	}
	out := make([]model.MediaFile, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// Delete removes one blob. Unknown ids are a no-op.
func (m *MediaStore) Delete(ctx context.Context, id string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// DeleteAllByOwner removes every blob owned by ownerID.
func (m *MediaStore) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM media_files WHERE owner_id = ?`, ownerID); err != nil {
		return fmt.Errorf("delete media files by owner: %w", err)
	}
	return nil
}

// TotalSize returns the summed payload size across all blobs.
func (m *MediaStore) TotalSize(ctx context.Context) (int64, error) {
	var total int64
	if err := m.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(size), 0) FROM media_files`); err != nil {
		return 0, fmt.Errorf("total media size: %w", err)
	}
	return total, nil
}
