package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanCollection scans collection_key, owner_id, payload and updated_at.
func ScanCollection(scanner Scanner) (*collectionRow, error) {
	row := &collectionRow{}
	var payload, updatedAt string

	if err := scanner.Scan(&row.Key, &row.OwnerID, &payload, &updatedAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	row.Payload = []byte(payload)
	row.UpdatedAt = t
	return row, nil
}

// ScanCollections scans every row of a collection query.
func ScanCollections(rows Rows) ([]*collectionRow, error) {
	var result []*collectionRow
	for rows.Next() {
		row, err := ScanCollection(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
