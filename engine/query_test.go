package engine

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/scrolldb/scrolldb/document"
	"github.com/scrolldb/scrolldb/store"
	"github.com/scrolldb/scrolldb/wire"
)

func TestRunQueryUnbounded(t *testing.T) {

	// Setup
	e, s := newTestEngine(t)
	mustInsert(t, s, "db.items",
		`{"id":1,"tag":"a"}`,
		`{"id":2,"tag":"b"}`,
		`{"id":3,"tag":"a"}`,
	)

	// Run: limit 0 is the "return everything" sentinel
	buf, err := e.RunQuery("db.items", 0, doc(`{"tag":"a"}`))

	// Check
	AssertNil(err)
	reply, err := wire.DecodeReply(buf)
	AssertNil(err)
	AssertEqual(reply.NReturned, int32(2))
	AssertEqual(reply.CursorID, int64(0))
	AssertEqual(string(reply.Docs[0].Payload()), `{"id":1,"tag":"a"}`)
	AssertEqual(string(reply.Docs[1].Payload()), `{"id":3,"tag":"a"}`)
}

func TestRunQueryLimited(t *testing.T) {

	e, s := newTestEngine(t)
	mustInsert(t, s, "db.items",
		`{"id":1,"tag":"a"}`,
		`{"id":2,"tag":"a"}`,
		`{"id":3,"tag":"a"}`,
	)

	buf, err := e.RunQuery("db.items", 2, doc(`{"tag":"a"}`))

	AssertNil(err)
	reply, _ := wire.DecodeReply(buf)
	AssertEqual(reply.NReturned, int32(2))
	AssertEqual(string(reply.Docs[0].Payload()), `{"id":1,"tag":"a"}`)
	AssertEqual(string(reply.Docs[1].Payload()), `{"id":2,"tag":"a"}`)
}

func TestRunQueryLimitStopsScan(t *testing.T) {

	// Setup
	e, s := newTestEngine(t)
	mustInsert(t, s, "db.items",
		`{"id":1,"tag":"a"}`,
		`{"id":2,"tag":"a"}`,
		`{"id":3,"tag":"a"}`,
		`{"id":4,"tag":"a"}`,
	)

	reads := 0
	counting := New(&countingStore{inner: e.store, reads: &reads}, nil)

	// Run
	buf, err := counting.RunQuery("db.items", 2, doc(`{"tag":"a"}`))

	// Check: the scan stopped at the 2nd match, records 3 and 4 were
	// never materialized
	AssertNil(err)
	reply, _ := wire.DecodeReply(buf)
	AssertEqual(reply.NReturned, int32(2))
	AssertEqual(reads, 2)
}

func TestRunQueryEmptyNamespace(t *testing.T) {

	e, _ := newTestEngine(t)

	buf, err := e.RunQuery("db.nothing", 0, doc(`{}`))

	AssertNil(err)
	reply, _ := wire.DecodeReply(buf)
	AssertEqual(reply.NReturned, int32(0))
	AssertEqual(reply.Len, int32(wire.HeaderSize))
}

func TestRunQueryStoreUnavailable(t *testing.T) {

	// a store that was never loaded cannot open scans
	s := store.NewStore(&store.Config{Dir: t.TempDir()})
	e := New(s, nil)

	_, err := e.RunQuery("db.items", 0, doc(`{}`))

	AssertTrue(errors.Is(err, ErrorNamespaceUnavailable))
}

// countingStore counts how many documents the engine materializes from the
// underlying scans.
type countingStore struct {
	inner Store
	reads *int
}

func (c *countingStore) OpenScan(namespace string) (store.Cursor, error) {
	cursor, err := c.inner.OpenScan(namespace)
	if err != nil {
		return nil, err
	}
	return &countingCursor{Cursor: cursor, reads: c.reads}, nil
}

func (c *countingStore) Insert(namespace string, doc document.Document) error {
	return c.inner.Insert(namespace, doc)
}

func (c *countingStore) DeleteAt(namespace string, loc store.Location) error {
	return c.inner.DeleteAt(namespace, loc)
}

func (c *countingStore) UpdateAt(namespace string, loc store.Location, doc document.Document) error {
	return c.inner.UpdateAt(namespace, loc, doc)
}

type countingCursor struct {
	store.Cursor
	reads *int
}

func (c *countingCursor) Document() document.Document {
	*c.reads++
	return c.Cursor.Document()
}
