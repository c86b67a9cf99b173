// Package propdb persists built grid property models to sqlite so tooling
// can inspect or diff them later. One snapshot row describes a model; each
// materialized property is stored as a gob-encoded, gzip-compressed cell
// array alongside it.
package propdb

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	_ "embed"
	"encoding/gob"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/strata-data/reservoir.model/internal/monitoring"
	"github.com/strata-data/reservoir.model/internal/props"
)

// Store wraps the sqlite handle for the snapshot database.
type Store struct {
	*sql.DB
}

// schema.sql defines the snapshot, property and fault multiplier tables.
//
//go:embed schema.sql
var schemaSQL string

// Open opens (creating if needed) a snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply snapshot schema: %w", err)
	}

	return &Store{db}, nil
}

// SnapshotInfo describes one stored model.
type SnapshotInfo struct {
	ID         string
	Name       string
	NX, NY, NZ int
	UnitSystem string
}

// SaveSnapshot stores every materialized property and fault multiplier of a
// finished engine under a fresh snapshot id, which it returns.
func (s *Store) SaveSnapshot(name string, e *props.Engine) (string, error) {
	id := uuid.NewString()
	g := e.Grid()

	tx, err := s.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO snapshots (snapshot_id, name, nx, ny, nz, unit_system)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, name, g.NX, g.NY, g.NZ, e.Units().Name())
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	insert := func(keyword, kind string, cellCount, order int, blob []byte) error {
		_, err := tx.Exec(`
			INSERT INTO grid_properties (snapshot_id, keyword, kind, cell_count, insertion_index, values_gob)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, keyword, kind, cellCount, order, blob)
		if err != nil {
			return fmt.Errorf("failed to insert property %s: %w", keyword, err)
		}
		return nil
	}

	order := 0
	for p := range e.IntProperties() {
		blob, err := encodeValues(p.Values())
		if err != nil {
			return "", err
		}
		if err := insert(p.Name(), "int", len(p.Values()), order, blob); err != nil {
			return "", err
		}
		order++
	}
	for p := range e.DoubleProperties() {
		blob, err := encodeValues(p.Values())
		if err != nil {
			return "", err
		}
		if err := insert(p.Name(), "double", len(p.Values()), order, blob); err != nil {
			return "", err
		}
		order++
	}

	for _, fault := range e.FaultNames() {
		mult, _ := e.FaultMultiplier(fault)
		_, err := tx.Exec(`
			INSERT INTO fault_multipliers (snapshot_id, fault_name, multiplier)
			VALUES (?, ?, ?)
		`, id, fault, mult)
		if err != nil {
			return "", fmt.Errorf("failed to insert fault multiplier %s: %w", fault, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	monitoring.Logf("saved snapshot %s (%q, %d properties)", id, name, order)
	return id, nil
}

// ListSnapshots returns the stored snapshots, newest first.
func (s *Store) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := s.Query(`
		SELECT snapshot_id, name, nx, ny, nz, unit_system
		FROM snapshots ORDER BY created_at DESC, snapshot_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.NX, &info.NY, &info.NZ, &info.UnitSystem); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// LoadIntValues returns the stored cell array of an integer property.
func (s *Store) LoadIntValues(snapshotID, keyword string) ([]int, error) {
	blob, err := s.loadBlob(snapshotID, keyword, "int")
	if err != nil {
		return nil, err
	}
	var values []int
	if err := decodeValues(blob, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// LoadDoubleValues returns the stored cell array of a double property.
func (s *Store) LoadDoubleValues(snapshotID, keyword string) ([]float64, error) {
	blob, err := s.loadBlob(snapshotID, keyword, "double")
	if err != nil {
		return nil, err
	}
	var values []float64
	if err := decodeValues(blob, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// PropertyNames returns the stored property names of a snapshot in their
// original insertion order.
func (s *Store) PropertyNames(snapshotID string) ([]string, error) {
	rows, err := s.Query(`
		SELECT keyword FROM grid_properties
		WHERE snapshot_id = ? ORDER BY insertion_index
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) loadBlob(snapshotID, keyword, kind string) ([]byte, error) {
	var blob []byte
	err := s.QueryRow(`
		SELECT values_gob FROM grid_properties
		WHERE snapshot_id = ? AND keyword = ? AND kind = ?
	`, snapshotID, props.Canonical(keyword), kind).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no %s property %q in snapshot %s", kind, keyword, snapshotID)
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func encodeValues(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(zw).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode cell values: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeValues(blob []byte, out interface{}) error {
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return fmt.Errorf("failed to decompress cell values: %w", err)
	}
	defer zr.Close()
	if err := gob.NewDecoder(zr).Decode(out); err != nil {
		return fmt.Errorf("failed to decode cell values: %w", err)
	}
	return nil
}
