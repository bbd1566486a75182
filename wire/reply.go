package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/scrolldb/scrolldb/document"
)

// OpReply is the operation tag of a query reply.
const OpReply = 1

// HeaderSize is the fixed reply header:
// len:int32 reserved:int32 operation:int32 cursorId:int64 startingFrom:int32 nReturned:int32
// All fields little-endian.
const HeaderSize = 4 + 4 + 4 + 8 + 4 + 4

var ErrorInvalidReply = errors.New("invalid reply")

// ReplyBuilder accumulates matched documents and seals them behind the reply
// header. The header is written last, once the final count and length are
// known.
type ReplyBuilder struct {
	buf       []byte
	nReturned int
}

func NewReplyBuilder() *ReplyBuilder {
	return &ReplyBuilder{
		buf: make([]byte, HeaderSize),
	}
}

// Append adds one document, in scan order.
func (b *ReplyBuilder) Append(doc document.Document) {
	b.buf = append(b.buf, doc...)
	b.nReturned++
}

// Count is the number of documents appended so far.
func (b *ReplyBuilder) Count() int {
	return b.nReturned
}

// Finish fills the header and hands the buffer over. The builder must not be
// used again afterwards; the returned buffer is exclusively the caller's.
func (b *ReplyBuilder) Finish() []byte {
	buf := b.buf
	b.buf = nil

	binary.LittleEndian.PutUint32(buf[0:], uint32(len(buf)))     // len
	binary.LittleEndian.PutUint32(buf[4:], 0)                    // reserved
	binary.LittleEndian.PutUint32(buf[8:], OpReply)              // operation
	binary.LittleEndian.PutUint64(buf[12:], 0)                   // cursorId, scans are one-shot
	binary.LittleEndian.PutUint32(buf[20:], 0)                   // startingFrom
	binary.LittleEndian.PutUint32(buf[24:], uint32(b.nReturned)) // nReturned

	return buf
}

// Reply is the decoded form of a reply buffer.
type Reply struct {
	Len          int32
	Reserved     int32
	Operation    int32
	CursorID     int64
	StartingFrom int32
	NReturned    int32
	Docs         []document.Document
}

// DecodeReply parses a reply buffer, validating the header against the
// payload it frames.
func DecodeReply(buf []byte) (*Reply, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrorInvalidReply, len(buf))
	}

	reply := &Reply{
		Len:          int32(binary.LittleEndian.Uint32(buf[0:])),
		Reserved:     int32(binary.LittleEndian.Uint32(buf[4:])),
		Operation:    int32(binary.LittleEndian.Uint32(buf[8:])),
		CursorID:     int64(binary.LittleEndian.Uint64(buf[12:])),
		StartingFrom: int32(binary.LittleEndian.Uint32(buf[20:])),
		NReturned:    int32(binary.LittleEndian.Uint32(buf[24:])),
	}

	if int(reply.Len) != len(buf) {
		return nil, fmt.Errorf("%w: header len %d, buffer %d", ErrorInvalidReply, reply.Len, len(buf))
	}
	if reply.Operation != OpReply {
		return nil, fmt.Errorf("%w: operation %d", ErrorInvalidReply, reply.Operation)
	}

	rest := buf[HeaderSize:]
	for len(rest) > 0 {
		doc, remainder, err := document.Next(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrorInvalidReply, err)
		}
		reply.Docs = append(reply.Docs, doc)
		rest = remainder
	}

	if len(reply.Docs) != int(reply.NReturned) {
		return nil, fmt.Errorf("%w: nReturned %d, payload has %d", ErrorInvalidReply, reply.NReturned, len(reply.Docs))
	}

	return reply, nil
}
