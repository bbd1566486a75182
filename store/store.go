package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/scrolldb/scrolldb/document"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var ErrorUnavailable = errors.New("store unavailable")

type Config struct {
	Dir string
}

// Store holds every namespace of the data directory, one append-only log
// file per namespace. It is the record-store collaborator of the execution
// engine: scans, inserts and by-location delete/update, with a per-namespace
// mutex providing the isolation the engine requires.
type Store struct {
	config     *Config
	status     string
	namespaces map[string]*namespace
	mutex      *sync.RWMutex
	exit       chan struct{}
}

func NewStore(config *Config) *Store {
	return &Store{
		config:     config,
		status:     StatusOpening,
		namespaces: map[string]*namespace{},
		mutex:      &sync.RWMutex{},
		exit:       make(chan struct{}),
	}
}

func (s *Store) GetStatus() string {
	return s.status
}

// Load opens every namespace file found in the data directory.
func (s *Store) Load() error {

	dir := s.config.Dir
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(dir, func(filename string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := filename
		name = strings.TrimPrefix(name, dir)
		name = strings.TrimPrefix(name, "/")

		t0 := time.Now()
		n, err := openNamespace(name, filename)
		if err != nil {
			fmt.Printf("ERROR: open namespace '%s': %s\n", filename, err.Error()) // todo: move to logger
			return err
		}
		fmt.Println(name, n.records.Len(), time.Since(t0)) // todo: move to logger

		s.namespaces[name] = n

		return nil
	})

	if err != nil {
		s.status = StatusClosing
		return err
	}

	s.status = StatusOperating

	return nil
}

func (s *Store) Start() error {

	go s.Load()

	<-s.exit

	return nil
}

func (s *Store) Stop() error {

	defer close(s.exit)

	s.status = StatusClosing

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var lastErr error
	for name, n := range s.namespaces {
		err := n.close()
		if err != nil {
			fmt.Printf("ERROR: close(%s): %s\n", name, err.Error())
			lastErr = err
		}
	}

	return lastErr
}

// get returns a namespace, optionally creating its file on first write.
func (s *Store) get(name string, create bool) (*namespace, error) {

	s.mutex.RLock()
	n, exists := s.namespaces[name]
	s.mutex.RUnlock()
	if exists {
		return n, nil
	}
	if !create {
		return nil, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	n, exists = s.namespaces[name]
	if exists {
		return n, nil
	}

	filename := path.Join(s.config.Dir, name)
	n, err := openNamespace(name, filename)
	if err != nil {
		return nil, err
	}
	s.namespaces[name] = n

	return n, nil
}

// OpenScan starts a forward-only scan. A namespace with no records, or one
// that does not exist at all, yields a valid immediately-exhausted cursor,
// not a failure, so reads and writes on absent namespaces stay idempotent.
func (s *Store) OpenScan(name string) (Cursor, error) {
	if s.status != StatusOperating {
		return nil, fmt.Errorf("%w: %s", ErrorUnavailable, s.status)
	}

	n, err := s.get(name, false)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return &scan{}, nil
	}

	return openScan(n), nil
}

// Insert appends a new record to the namespace, creating it if needed.
func (s *Store) Insert(name string, doc document.Document) error {
	if s.status != StatusOperating {
		return fmt.Errorf("%w: %s", ErrorUnavailable, s.status)
	}

	n, err := s.get(name, true)
	if err != nil {
		return err
	}

	return n.insert(doc)
}

// DeleteAt removes the record at loc. The location must refer to a live
// record; it is spent by this call.
func (s *Store) DeleteAt(name string, loc Location) error {
	if s.status != StatusOperating {
		return fmt.Errorf("%w: %s", ErrorUnavailable, s.status)
	}

	n, err := s.get(name, false)
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("namespace '%s' has no records", name)
	}

	return n.deleteAt(loc)
}

// UpdateAt overwrites the record at loc with the document's payload. The
// record keeps its location.
func (s *Store) UpdateAt(name string, loc Location, doc document.Document) error {
	if s.status != StatusOperating {
		return fmt.Errorf("%w: %s", ErrorUnavailable, s.status)
	}

	n, err := s.get(name, false)
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("namespace '%s' has no records", name)
	}

	return n.updateAt(loc, doc)
}

type Namespace struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

func (s *Store) ListNamespaces() []*Namespace {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := []*Namespace{}
	for name, n := range s.namespaces {
		result = append(result, &Namespace{
			Name:  name,
			Total: n.records.Len(),
		})
	}

	return result
}

func (s *Store) DropNamespace(name string) error {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	n, exists := s.namespaces[name]
	if !exists {
		return fmt.Errorf("namespace '%s' not found", name)
	}

	err := n.close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	err = os.Remove(n.filename)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	delete(s.namespaces, name)

	return nil
}
