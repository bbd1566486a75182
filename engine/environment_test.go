package engine

import (
	"io"
	"log"
	"testing"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {

	t.Helper()

	s := store.NewStore(&store.Config{Dir: t.TempDir()})
	if err := s.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	t.Cleanup(func() {
		s.Stop()
	})

	return New(s, log.New(io.Discard, "", 0)), s
}

func doc(s string) document.Document {
	return document.New([]byte(s))
}

func mustInsert(t *testing.T, s *store.Store, namespace string, payloads ...string) {

	t.Helper()

	for _, payload := range payloads {
		if err := s.Insert(namespace, doc(payload)); err != nil {
			t.Fatalf("insert into %s: %v", namespace, err)
		}
	}
}

func payloads(t *testing.T, s *store.Store, namespace string) []string {

	t.Helper()

	result := []string{}
	c, err := s.OpenScan(namespace)
	if err != nil {
		t.Fatalf("open scan %s: %v", namespace, err)
	}
	for c.Ok() {
		result = append(result, string(c.Document().Payload()))
		c.Advance()
	}
	return result
}
