package wire

import (
	"encoding/binary"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/scrolldb/scrolldb/document"
)

func TestReplyHeaderLayout(t *testing.T) {

	// Setup
	b := NewReplyBuilder()
	d1 := document.New([]byte(`{"id":1}`))
	d2 := document.New([]byte(`{"id":2}`))
	b.Append(d1)
	b.Append(d2)

	// Run
	buf := b.Finish()

	// Check every header field at its byte offset
	AssertEqual(len(buf), HeaderSize+d1.Size()+d2.Size())
	AssertEqual(binary.LittleEndian.Uint32(buf[0:]), uint32(len(buf)))  // len
	AssertEqual(binary.LittleEndian.Uint32(buf[4:]), uint32(0))         // reserved
	AssertEqual(binary.LittleEndian.Uint32(buf[8:]), uint32(OpReply))   // operation
	AssertEqual(binary.LittleEndian.Uint64(buf[12:]), uint64(0))        // cursorId
	AssertEqual(binary.LittleEndian.Uint32(buf[20:]), uint32(0))        // startingFrom
	AssertEqual(binary.LittleEndian.Uint32(buf[24:]), uint32(2))        // nReturned
}

func TestReplyRoundtrip(t *testing.T) {

	// Setup
	b := NewReplyBuilder()
	b.Append(document.New([]byte(`{"id":1,"tag":"a"}`)))
	b.Append(document.New([]byte(`{"id":3,"tag":"a"}`)))

	// Run
	reply, err := DecodeReply(b.Finish())

	// Check
	AssertNil(err)
	AssertEqual(reply.NReturned, int32(2))
	AssertEqual(reply.CursorID, int64(0))
	AssertEqual(reply.StartingFrom, int32(0))
	AssertEqual(string(reply.Docs[0].Payload()), `{"id":1,"tag":"a"}`)
	AssertEqual(string(reply.Docs[1].Payload()), `{"id":3,"tag":"a"}`)
}

func TestReplyEmpty(t *testing.T) {

	buf := NewReplyBuilder().Finish()

	reply, err := DecodeReply(buf)
	AssertNil(err)
	AssertEqual(reply.Len, int32(HeaderSize))
	AssertEqual(reply.NReturned, int32(0))
	AssertEqual(len(reply.Docs), 0)
}

func TestDecodeReplyTruncated(t *testing.T) {

	b := NewReplyBuilder()
	b.Append(document.New([]byte(`{"id":1}`)))
	buf := b.Finish()

	_, err := DecodeReply(buf[:len(buf)-2])
	AssertNotNil(err)
}
