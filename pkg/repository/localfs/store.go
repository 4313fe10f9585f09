// Package localfs implements repository.Repository against a process-local,
// file-backed store. It is used for offline/demo operation and deterministic
// testing; identifier and timestamp semantics match the other backends so
// switching implementations changes nothing observable to consumers.
package localfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"orgdash/pkg/domain"
	"orgdash/pkg/repository"
)

const (
	organizationsFile = "organizations.json"
	agenciesFile      = "agencies.json"
)

// Options defines the configuration parameters for the local store.
type Options struct {
	// DataDir is the directory holding the JSON data files. It is created if
	// it does not exist.
	DataDir string
}

// Store keeps both entity families in memory and writes them back to disk on
// every mutation. All methods are safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	dir string

	organizations map[domain.OrganizationID]domain.Organization
	agencies      map[domain.AgencyID]domain.Agency
}

// Compile-time interface checks.
var (
	_ repository.Repository = (*Store)(nil)
	_ repository.Purger     = (*Store)(nil)
)

// New creates a Store rooted at options.DataDir and loads any existing data
// files from a previous run.
func New(options Options) (*Store, error) {
	if err := os.MkdirAll(options.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create data dir: %w", err)
	}

	s := &Store{
		dir:           options.DataDir,
		organizations: make(map[domain.OrganizationID]domain.Organization),
		agencies:      make(map[domain.AgencyID]domain.Agency),
	}

	var orgs []fileOrganization
	if err := readFile(filepath.Join(options.DataDir, organizationsFile), &orgs); err != nil {
		return nil, err
	}
	for _, o := range orgs {
		s.organizations[domain.OrganizationID(o.ID)] = o.ToDomain()
	}

	var agencies []fileAgency
	if err := readFile(filepath.Join(options.DataDir, agenciesFile), &agencies); err != nil {
		return nil, err
	}
	for _, a := range agencies {
		s.agencies[domain.AgencyID(a.ID)] = a.ToDomain()
	}

	return s, nil
}

// Close releases the store. Writes are synchronous, so there is nothing to
// flush.
func (s *Store) Close() error { return nil }

// now returns the timestamp used for created_at/updated_at/deleted_at.
// Microsecond precision matches what the SQL backend stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// readFile loads a JSON data file into out. A missing file is not an error:
// the store starts empty.
func readFile(path string, out any) error {
	b, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("could not read %s: %w", filepath.Base(path), err)
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode %s: %w", filepath.Base(path), err)
	}

	return nil
}

// writeFile persists v as indented JSON via a temp file + rename so a crash
// mid-write never leaves a truncated data file behind.
func writeFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("could not write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace %s: %w", filepath.Base(path), err)
	}

	return nil
}

// persistOrganizations writes the organizations file. Caller must hold mu.
func (s *Store) persistOrganizations() error {
	rows := make([]fileOrganization, 0, len(s.organizations))
	for _, o := range s.organizations {
		rows = append(rows, fileOrganizationFromDomain(o))
	}
	sortByCreatedAt(rows, func(r fileOrganization) (time.Time, string) { return r.CreatedAt, r.ID.String() })

	return writeFile(filepath.Join(s.dir, organizationsFile), rows)
}

// persistAgencies writes the agencies file. Caller must hold mu.
func (s *Store) persistAgencies() error {
	rows := make([]fileAgency, 0, len(s.agencies))
	for _, a := range s.agencies {
		rows = append(rows, fileAgencyFromDomain(a))
	}
	sortByCreatedAt(rows, func(r fileAgency) (time.Time, string) { return r.CreatedAt, r.ID.String() })

	return writeFile(filepath.Join(s.dir, agenciesFile), rows)
}

// sortByCreatedAt orders rows newest-first with the ID as a deterministic
// tie-breaker, matching the list ordering of the SQL backend.
func sortByCreatedAt[T any](rows []T, key func(T) (time.Time, string)) {
	sort.Slice(rows, func(i, j int) bool {
		ti, idi := key(rows[i])
		tj, idj := key(rows[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}

		return idi > idj
	})
}

// PurgeDeletedBefore permanently removes rows soft-deleted before cutoff from
// both entity families and returns how many were dropped.
func (s *Store) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for id, o := range s.organizations {
		if !o.DeletedAt.IsZero() && o.DeletedAt.Before(cutoff) {
			delete(s.organizations, id)
			purged++
		}
	}
	for id, a := range s.agencies {
		if !a.DeletedAt.IsZero() && a.DeletedAt.Before(cutoff) {
			delete(s.agencies, id)
			purged++
		}
	}

	if purged == 0 {
		return 0, nil
	}
	if err := s.persistOrganizations(); err != nil {
		return purged, err
	}
	if err := s.persistAgencies(); err != nil {
		return purged, err
	}

	return purged, nil
}
