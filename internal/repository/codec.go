package repository

import (
	"bytes"
	"encoding/json"

	"say-to-plan/internal/errors"
)

// EncodeCollection serializes records as a JSON array.
func EncodeCollection(records []TaskRecord) ([]byte, error) {
	if records == nil {
		records = []TaskRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.NewStorageError("encode collection", err)
	}
	return data, nil
}

// DecodeCollection parses a JSON array produced by EncodeCollection.
// Timestamps come back as time.Time values and a missing or null dueDate
// stays nil.
func DecodeCollection(data []byte) ([]TaskRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []TaskRecord{}, nil
	}
	var records []TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewStorageError("decode collection", err)
	}
	if records == nil {
		records = []TaskRecord{}
	}
	return records, nil
}
