package engine

import (
	"errors"
	"io"
	"log"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/store"
)

var (
	ErrorProtectedNamespace   = errors.New("protected namespace")
	ErrorNamespaceUnavailable = errors.New("namespace unavailable")
)

// Store is the record-store collaborator. The engine requires from it:
// a scan observes a consistent forward-progressing view of records while
// deletions and updates occur, and a location captured for the current
// record stays valid to pass to DeleteAt/UpdateAt exactly once, immediately,
// with no cursor advancement in between.
type Store interface {
	OpenScan(namespace string) (store.Cursor, error)
	Insert(namespace string, doc document.Document) error
	DeleteAt(namespace string, loc store.Location) error
	UpdateAt(namespace string, loc store.Location, doc document.Document) error
}

// Engine executes pattern-driven queries, deletions and updates as one-shot
// full-namespace scans. Each call runs synchronously to completion or early
// exit; it never retries, and a delete that fails partway leaves the records
// already deleted in place (no rollback).
type Engine struct {
	store Store
	log   *log.Logger
}

func New(s Store, l *log.Logger) *Engine {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Engine{
		store: s,
		log:   l,
	}
}
