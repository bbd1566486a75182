package match

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/scrolldb/scrolldb/document"
)

var ErrorMalformedPattern = errors.New("malformed pattern")

// Matcher is a compiled predicate over documents. It is built once per
// operation from a query pattern and reused for every candidate of the scan,
// so the pattern is parsed here and never again.
type Matcher struct {
	filter map[string]interface{}
}

// New compiles a pattern document. It fails only when the pattern is not a
// JSON object; once constructed, Matches never fails.
func New(pattern document.Document) (*Matcher, error) {
	filter := map[string]interface{}{}
	err := json.Unmarshal(pattern.Payload(), &filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrorMalformedPattern, err)
	}

	return &Matcher{
		filter: filter,
	}, nil
}

// Matches reports whether the candidate satisfies the pattern. An empty
// pattern matches everything. A candidate that cannot be decoded or
// evaluated against the pattern is not a match, never an error.
func (m *Matcher) Matches(candidate document.Document) bool {
	if len(m.filter) == 0 {
		return true
	}

	data := map[string]interface{}{}
	err := json.Unmarshal(candidate.Payload(), &data)
	if err != nil {
		return false
	}

	ok, err := connor.Match(m.filter, data)
	if err != nil {
		return false
	}

	return ok
}
