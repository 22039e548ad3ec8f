package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

const storeVersion = 1

// storeFile is the on-disk schema: one YAML document holding every record,
// grouped by topic.
type storeFile struct {
	Version int                        `yaml:"version"`
	Topics  map[string][]*MemoryRecord `yaml:"topics,omitempty"`
}

// Store is the owning aggregate for all memory records. It is fully
// materialized in memory and flushed to a single file after every mutation.
// One Store instance owns one file; callers hold exactly one per target.
type Store struct {
	fs     billy.Filesystem
	path   string
	topics map[string][]*MemoryRecord
}

// OpenStore loads the store at path, or starts empty when the file does not
// exist yet. A file that exists but cannot be parsed is surfaced as
// ErrCorruptStore, never silently discarded.
func OpenStore(fs billy.Filesystem, path string) (*Store, error) {
	s := &Store{
		fs:     fs,
		path:   path,
		topics: make(map[string][]*MemoryRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStoreFile opens a store on the host filesystem.
func OpenStoreFile(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	return OpenStore(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
}

func (s *Store) Path() string {
	return s.path
}

// InitStore materializes an empty store file at path unless one already
// exists there.
func InitStore(path string) error {
	s, err := OpenStoreFile(path)
	if err != nil {
		return err
	}
	if _, err := s.fs.Stat(s.path); err == nil {
		return nil
	}
	return s.save()
}

func (s *Store) load() error {
	data, err := util.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return nil // first run
	}
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrCorruptStore, s.path, err)
	}
	if file.Version > storeVersion {
		return fmt.Errorf("%w: %s has version %d, this build reads up to %d",
			ErrCorruptStore, s.path, file.Version, storeVersion)
	}

	for topic, records := range file.Topics {
		if _, err := NewTopic(topic); err != nil {
			return fmt.Errorf("%w: %s contains an empty topic", ErrCorruptStore, s.path)
		}
		for _, rec := range records {
			if _, err := NewTitle(rec.Title); err != nil {
				return fmt.Errorf("%w: topic %q contains a record without a title", ErrCorruptStore, topic)
			}
			rec.Topic = topic
			rec.Tags = NormalizeTags(rec.Tags)
		}
	}
	for topic, records := range file.Topics {
		seen := make(map[string]bool, len(records))
		for _, rec := range records {
			lower := strings.ToLower(rec.Title)
			if seen[lower] {
				return fmt.Errorf("%w: duplicate title %q in topic %q", ErrCorruptStore, rec.Title, topic)
			}
			seen[lower] = true
		}
		if len(records) > 0 {
			s.topics[topic] = records
		}
	}

	return nil
}

// save serializes the whole store and replaces the file in one rename, so a
// crash mid-write leaves the previous file intact.
func (s *Store) save() error {
	data, err := yaml.Marshal(storeFile{Version: storeVersion, Topics: s.topics})
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := util.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("close temp store: %w", err)
	}

	if err := s.fs.Rename(tmp.Name(), s.path); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Insert adds a new record. Writing an existing (topic, title) pair is a
// conflict; update is the mutation path.
func (s *Store) Insert(rec *MemoryRecord) error {
	if s.find(rec.Topic, rec.Title) != nil {
		return fmt.Errorf("%s/%s: %w", rec.Topic, rec.Title, ErrAlreadyExists)
	}

	s.topics[rec.Topic] = append(s.topics[rec.Topic], rec)
	if err := s.save(); err != nil {
		return fmt.Errorf("persist insert: %w", err)
	}
	return nil
}

// Get returns the record identified by (topic, title).
func (s *Store) Get(topic, title string) (*MemoryRecord, error) {
	rec := s.find(topic, title)
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

// Update replaces content and/or tags of an existing record. A nil content
// leaves content unchanged; a nil tags slice leaves tags unchanged, while an
// empty non-nil slice clears them. Supplying neither is a successful no-op
// that does not touch the file or bump UpdatedAt.
func (s *Store) Update(topic, title string, content *string, tags []string) (*MemoryRecord, error) {
	rec := s.find(topic, title)
	if rec == nil {
		return nil, ErrNotFound
	}

	if content == nil && tags == nil {
		return rec.Clone(), nil
	}

	if content != nil {
		rec.Content = *content
	}
	if tags != nil {
		rec.Tags = NormalizeTags(tags)
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := s.save(); err != nil {
		return nil, fmt.Errorf("persist update: %w", err)
	}
	return rec.Clone(), nil
}

// Delete removes exactly one record. The topic disappears with its last
// record; topics only exist through their records.
func (s *Store) Delete(topic, title string) error {
	records := s.topics[topic]
	for i, rec := range records {
		if !TitleEqual(rec.Title, title) {
			continue
		}

		records = append(records[:i], records[i+1:]...)
		if len(records) == 0 {
			delete(s.topics, topic)
		} else {
			s.topics[topic] = records
		}

		if err := s.save(); err != nil {
			return fmt.Errorf("persist delete: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

// DeleteTopic removes every record under topic and reports how many were
// removed. Purging an absent topic is not an error.
func (s *Store) DeleteTopic(topic string) (int, error) {
	records, ok := s.topics[topic]
	if !ok {
		return 0, nil
	}

	delete(s.topics, topic)
	if err := s.save(); err != nil {
		return 0, fmt.Errorf("persist delete: %w", err)
	}
	return len(records), nil
}

// Len returns the total record count.
func (s *Store) Len() int {
	n := 0
	for _, records := range s.topics {
		n += len(records)
	}
	return n
}

func (s *Store) find(topic, title string) *MemoryRecord {
	for _, rec := range s.topics[topic] {
		if TitleEqual(rec.Title, title) {
			return rec
		}
	}
	return nil
}
