package service

import (
	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/store"
)

type Servicer interface {
	Insert(namespace string, doc document.Document) error
	Find(namespace string, limit int, pattern document.Document) ([]byte, error)
	Remove(namespace string, pattern document.Document, justOne bool) error
	Update(namespace string, update, pattern document.Document, upsert bool) error
	ListNamespaces() []*store.Namespace
	DropNamespace(namespace string) error
}
