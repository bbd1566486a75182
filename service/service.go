package service

import (
	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/engine"
	"github.com/scrolldb/scrolldb/store"
)

// Service is the thin seam between the HTTP surface and the execution
// engine: every operation is one engine call or one store call.
type Service struct {
	store  *store.Store
	engine *engine.Engine
}

func NewService(s *store.Store, e *engine.Engine) *Service {
	return &Service{
		store:  s,
		engine: e,
	}
}

func (s *Service) Insert(namespace string, doc document.Document) error {
	return s.store.Insert(namespace, doc)
}

func (s *Service) Find(namespace string, limit int, pattern document.Document) ([]byte, error) {
	return s.engine.RunQuery(namespace, limit, pattern)
}

func (s *Service) Remove(namespace string, pattern document.Document, justOne bool) error {
	return s.engine.DeleteMatching(namespace, pattern, justOne)
}

func (s *Service) Update(namespace string, update, pattern document.Document, upsert bool) error {
	return s.engine.UpdateMatching(namespace, update, pattern, upsert)
}

func (s *Service) ListNamespaces() []*store.Namespace {
	return s.store.ListNamespaces()
}

func (s *Service) DropNamespace(namespace string) error {
	return s.store.DropNamespace(namespace)
}
