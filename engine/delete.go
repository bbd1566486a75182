package engine

import (
	"fmt"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/match"
)

// DeleteMatching removes every record matching pattern, or only the first
// one in scan order when justOne is set. Completing the scan (or the justOne
// short-circuit) is the success condition; no count is reported.
func (e *Engine) DeleteMatching(namespace string, pattern document.Document, justOne bool) error {

	e.log.Printf("delete ns:%s patternsize:%d justone:%v", namespace, pattern.Size(), justOne)

	if IsProtectedNamespace(namespace) {
		return fmt.Errorf("%w: delete in '%s'", ErrorProtectedNamespace, namespace)
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
		// must advance before deleting, removing the current record would
		// kill the cursor's pointer to the next one
		c.Advance()
		if !matcher.Matches(doc) {
			continue
		}
		err := e.store.DeleteAt(namespace, loc)
		if err != nil {
			return fmt.Errorf("delete at %d: %w", loc, err)
		}
		if justOne {
			return nil
		}
	}

	return nil
}
