package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/scrolldb/scrolldb/document"
)

// Location is a stable, comparable handle to a record's position inside a
// namespace. It stays valid after the cursor that produced it has advanced,
// and is consumed by the delete/update primitive it is passed to.
type Location int64

type record struct {
	loc     Location
	payload json.RawMessage
}

type namespace struct {
	name     string
	filename string // Just informative...
	file     *os.File
	records  *btree.BTreeG[*record]
	nextLoc  Location
	mutex    *sync.Mutex
}

func newRecordTree() *btree.BTreeG[*record] {
	return btree.NewG(32, func(a, b *record) bool {
		return a.loc < b.loc
	})
}

// openNamespace reads the whole file and replays its commands into memory,
// then reopens the file for append.
func openNamespace(name, filename string) (*namespace, error) {

	f, err := os.OpenFile(filename, os.O_RDONLY|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("open file for read: %w", err)
	}

	n := &namespace{
		name:     name,
		filename: filename,
		records:  newRecordTree(),
		mutex:    &sync.Mutex{},
	}

	j := json.NewDecoder(f)
	for {
		command := &Command{}
		err := j.Decode(&command)
		if err == io.EOF {
			break
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode json: %w", err)
		}

		switch command.Name {
		case "insert":
			n.addRecord(command.Payload)
		case "remove":
			params := struct {
				Loc Location `json:"loc"`
			}{}
			json.Unmarshal(command.Payload, &params)
			err := n.deleteRecord(params.Loc)
			if err != nil {
				fmt.Printf("WARNING: remove record %d: %s\n", params.Loc, err.Error())
			}
		case "update":
			params := struct {
				Loc Location        `json:"loc"`
				Doc json.RawMessage `json:"doc"`
			}{}
			json.Unmarshal(command.Payload, &params)
			err := n.updateRecord(params.Loc, params.Doc)
			if err != nil {
				fmt.Printf("WARNING: update record %d: %s\n", params.Loc, err.Error())
			}
		}
	}

	err = f.Close()
	if err != nil {
		return nil, fmt.Errorf("close file after read: %w", err)
	}

	n.file, err = os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("open file for write: %w", err)
	}

	return n, nil
}

// addRecord appends at the next location. Caller holds the mutex (or is the
// replay sequence, which is single-threaded).
func (n *namespace) addRecord(payload json.RawMessage) *record {
	r := &record{
		loc:     n.nextLoc,
		payload: payload,
	}
	n.nextLoc++
	n.records.ReplaceOrInsert(r)
	return r
}

func (n *namespace) deleteRecord(loc Location) error {
	_, found := n.records.Delete(&record{loc: loc})
	if !found {
		return fmt.Errorf("record %d does not exist", loc)
	}
	return nil
}

func (n *namespace) updateRecord(loc Location, payload json.RawMessage) error {
	r, found := n.records.Get(&record{loc: loc})
	if !found {
		return fmt.Errorf("record %d does not exist", loc)
	}
	r.payload = payload
	return nil
}

func (n *namespace) appendCommand(name string, payload json.RawMessage) error {
	if n.file == nil {
		return fmt.Errorf("namespace is closed")
	}

	command := &Command{
		Name:      name,
		Uuid:      uuid.New().String(),
		Timestamp: time.Now().UnixNano(),
		Payload:   payload,
	}

	err := json.NewEncoder(n.file).Encode(command)
	if err != nil {
		return fmt.Errorf("json encode command: %w", err)
	}

	return nil
}

func (n *namespace) insert(doc document.Document) error {
	return lockBlock(n.mutex, func() error {
		payload := json.RawMessage(append([]byte{}, doc.Payload()...))
		n.addRecord(payload)
		return n.appendCommand("insert", payload)
	})
}

func (n *namespace) deleteAt(loc Location) error {
	return lockBlock(n.mutex, func() error {
		err := n.deleteRecord(loc)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]interface{}{
			"loc": loc,
		})
		if err != nil {
			return fmt.Errorf("json encode remove: %w", err)
		}
		return n.appendCommand("remove", payload)
	})
}

func (n *namespace) updateAt(loc Location, doc document.Document) error {
	return lockBlock(n.mutex, func() error {
		newPayload := json.RawMessage(append([]byte{}, doc.Payload()...))
		err := n.updateRecord(loc, newPayload)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]interface{}{
			"loc": loc,
			"doc": newPayload,
		})
		if err != nil {
			return fmt.Errorf("json encode update: %w", err)
		}
		return n.appendCommand("update", payload)
	})
}

func (n *namespace) close() error {
	err := n.file.Close()
	n.file = nil
	return err
}

func lockBlock(m *sync.Mutex, f func() error) error {
	m.Lock()
	defer m.Unlock()
	return f()
}
