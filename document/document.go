package document

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// PrefixSize is the number of bytes of the size prefix.
	PrefixSize = 4

	// MaxSize caps a single encoded document, prefix included.
	MaxSize = 16 * 1024 * 1024
)

var (
	ErrorTooLarge  = errors.New("document too large")
	ErrorTruncated = errors.New("truncated document")
)

// Document is an immutable encoded record value: a little-endian int32 with
// the total size (prefix included) followed by the JSON payload. Documents
// are self-describing, so a buffer of concatenated documents can be walked
// with Next without any external framing.
type Document []byte

// New frames a JSON payload into a Document. The payload bytes are copied,
// the Document does not alias the input.
func New(payload []byte) Document {
	d := make(Document, PrefixSize+len(payload))
	binary.LittleEndian.PutUint32(d, uint32(len(d)))
	copy(d[PrefixSize:], payload)
	return d
}

// FromValue encodes any JSON-encodable value as a Document.
func FromValue(value interface{}) (Document, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("json encode payload: %w", err)
	}
	return New(payload), nil
}

// Size is the total byte length of the encoded document, prefix included.
func (d Document) Size() int {
	return int(binary.LittleEndian.Uint32(d))
}

// Payload is the raw JSON view of the document.
func (d Document) Payload() []byte {
	return d[PrefixSize:]
}

// Map decodes the payload into a generic JSON object.
func (d Document) Map() (map[string]interface{}, error) {
	item := map[string]interface{}{}
	err := json.Unmarshal(d.Payload(), &item)
	if err != nil {
		return nil, fmt.Errorf("json decode payload: %w", err)
	}
	return item, nil
}

// Next reads one document from the head of buf and returns the remainder.
func Next(buf []byte) (Document, []byte, error) {
	if len(buf) < PrefixSize {
		return nil, nil, ErrorTruncated
	}
	size := int(binary.LittleEndian.Uint32(buf))
	if size < PrefixSize {
		return nil, nil, fmt.Errorf("invalid document size %d", size)
	}
	if size > MaxSize {
		return nil, nil, fmt.Errorf("%w: size %d", ErrorTooLarge, size)
	}
	if size > len(buf) {
		return nil, nil, ErrorTruncated
	}
	return Document(buf[:size]), buf[size:], nil
}
