package engine

import (
	"fmt"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/match"
	"github.com/scrolldb/scrolldb/wire"
)

// RunQuery scans the namespace and collects every record matching pattern
// into a wire reply, in scan order. A limit greater than zero caps the
// returned count and stops the scan at the moment it is reached; limit zero
// means unbounded, every match in the namespace is returned. The reply
// buffer is owned by the caller; no server-side cursor is created, so the
// reply always carries cursor id zero.
func (e *Engine) RunQuery(namespace string, limit int, pattern document.Document) ([]byte, error) {

	e.log.Printf("query ns:%s limit:%d patternsize:%d", namespace, limit, pattern.Size())

	matcher, err := match.New(pattern)
	if err != nil {
		return nil, err
	}

	c, err := e.store.OpenScan(namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrorNamespaceUnavailable, err)
	}

	b := wire.NewReplyBuilder()

	for c.Ok() {
		doc := c.Document()
		if matcher.Matches(doc) {
			b.Append(doc)
			if limit != 0 && b.Count() >= limit {
				break
			}
		}
		c.Advance()
	}

	return b.Finish(), nil
}
