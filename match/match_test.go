package match

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/scrolldb/scrolldb/document"
)

func doc(s string) document.Document {
	return document.New([]byte(s))
}

func TestMatchesEquality(t *testing.T) {

	m, err := New(doc(`{"tag":"a"}`))
	AssertNil(err)

	AssertTrue(m.Matches(doc(`{"id":1,"tag":"a"}`)))
	AssertFalse(m.Matches(doc(`{"id":2,"tag":"b"}`)))
}

func TestMatchesSubset(t *testing.T) {

	// All pattern fields must match, extra candidate fields are ignored
	m, err := New(doc(`{"tag":"a","id":1}`))
	AssertNil(err)

	AssertTrue(m.Matches(doc(`{"id":1,"tag":"a","extra":true}`)))
	AssertFalse(m.Matches(doc(`{"id":2,"tag":"a"}`)))
}

func TestMatchesEmptyPattern(t *testing.T) {

	m, err := New(doc(`{}`))
	AssertNil(err)

	AssertTrue(m.Matches(doc(`{"anything":"goes"}`)))
	AssertTrue(m.Matches(doc(`not even json`)))
}

func TestMatchesUndecodableCandidate(t *testing.T) {

	m, err := New(doc(`{"tag":"a"}`))
	AssertNil(err)

	// never an error, just not a match
	AssertFalse(m.Matches(doc(`this is not json`)))
}

func TestNewMalformedPattern(t *testing.T) {

	_, err := New(doc(`{"unterminated":`))

	AssertNotNil(err)
	AssertTrue(errors.Is(err, ErrorMalformedPattern))
}
