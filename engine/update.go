package engine

import (
	"fmt"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/match"
)

// UpdateMatching overwrites the first record matching pattern with the
// update payload and returns. At most one record is modified per call; this
// is deliberate, an in-place update may relocate the record and the new
// location is not surfaced back, so the scan cannot safely continue into
// further matches. When nothing matches: with upsert the update payload
// itself is inserted as a new record, without it the call succeeds having
// changed nothing.
func (e *Engine) UpdateMatching(namespace string, update, pattern document.Document, upsert bool) error {

	e.log.Printf("update ns:%s objsize:%d patternsize:%d upsert:%v", namespace, update.Size(), pattern.Size(), upsert)

	if IsProtectedNamespace(namespace) {
		return fmt.Errorf("%w: update in '%s'", ErrorProtectedNamespace, namespace)
	}

	matcher, err := match.New(pattern)
	if err != nil {
		return err
	}

	c, err := e.store.OpenScan(namespace)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrorNamespaceUnavailable, err)
	}

	for c.Ok() {
		doc := c.Document()
		loc := c.Location()
		// same ordering rule as delete: the update may relocate the record,
		// so step off it before touching it
		c.Advance()
		if !matcher.Matches(doc) {
			continue
		}
		err := e.store.UpdateAt(namespace, loc, update)
		if err != nil {
			return fmt.Errorf("update at %d: %w", loc, err)
		}
		return nil
	}

	if !upsert {
		return nil
	}

	e.log.Printf("update ns:%s no match, doing upsert", namespace)

	err = e.store.Insert(namespace, update)
	if err != nil {
		return fmt.Errorf("upsert insert: %w", err)
	}

	return nil
}
