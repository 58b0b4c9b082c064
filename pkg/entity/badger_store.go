package entity

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/inkwell-run/cardtree/pkg/node"
)

// BadgerStore is a Store backed by a github.com/dgraph-io/badger/v4
// database. A content tree built once (e.g. by a CLI command) can be
// persisted and reopened in a later process without rebuilding it, while
// CardWalker and route.Tree remain unaware of the backend: both consume
// only the Store interface.
//
// BadgerStore loads its full record set into memory on Open/Load and
// serves reads from there; Badger is used purely as the durability layer,
// not as a live query engine, which matches spec.md §5's "entity store is
// read-only during a walk" model.
type BadgerStore struct {
	db  *badger.DB
	mem *MemStore
	root ID
}

var _ Store = (*BadgerStore)(nil)

const (
	rootKey   = "cardtree:root"
	recordKeyPrefix = "cardtree:record:"
)

// OpenBadgerStore opens (creating if necessary) a Badger database at dir
// and loads its stored records into memory.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("entity: open badger store at %q: %w", dir, err)
	}
	s := &BadgerStore{db: db, mem: &MemStore{records: make(map[ID]Record)}}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Root returns the persisted root entity, if one was recorded via Save.
func (s *BadgerStore) Root() (ID, bool) {
	return s.root, s.root != Nil
}

func (s *BadgerStore) load() error {
	records := make(map[ID]Record)
	var root ID
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(recordKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				decoded, err := decodeRecord(val)
				if err != nil {
					return err
				}
				rec = decoded
				return nil
			}); err != nil {
				return err
			}
			records[rec.ID] = rec
		}
		item, err := txn.Get([]byte(rootKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			root = ID(val)
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("entity: load badger store: %w", err)
	}
	s.mem = &MemStore{records: records}
	s.root = root
	return nil
}

// Save persists every record in records, along with root as the tree's
// root entity, overwriting whatever was previously stored under the same
// IDs. Save reloads the in-memory view afterward so the BadgerStore
// reflects what was just written.
func (s *BadgerStore) Save(records map[ID]Record, root ID) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for id, rec := range records {
			encoded, err := encodeRecord(rec)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(recordKeyPrefix+string(id)), encoded); err != nil {
				return err
			}
		}
		return txn.Set([]byte(rootKey), []byte(root))
	})
	if err != nil {
		return fmt.Errorf("entity: save badger store: %w", err)
	}
	return s.load()
}

func (s *BadgerStore) ChildrenOf(e ID) []ID         { return s.mem.ChildrenOf(e) }
func (s *BadgerStore) ParentOf(e ID) (ID, bool)     { return s.mem.ParentOf(e) }
func (s *BadgerStore) Kind(e ID) (node.Kind, bool)  { return s.mem.Kind(e) }
func (s *BadgerStore) Data(e ID) (any, bool)        { return s.mem.Data(e) }
func (s *BadgerStore) HasMarker(e ID, m Marker) bool { return s.mem.HasMarker(e, m) }
func (s *BadgerStore) Exists(e ID) bool             { return s.mem.Exists(e) }

// wireRecord is Record's JSON-serializable shape: Data is stored as a
// tagged payload so it can be decoded back into the correct per-kind
// struct from pkg/node.
type wireRecord struct {
	ID       ID        `json:"id"`
	Node     node.Kind `json:"node"`
	Parent   ID        `json:"parent,omitempty"`
	Children []ID      `json:"children,omitempty"`
	Markers  MarkerSet `json:"markers"`
	Data     json.RawMessage `json:"data,omitempty"`
}

func encodeRecord(r Record) ([]byte, error) {
	var data json.RawMessage
	if r.Data != nil {
		raw, err := json.Marshal(r.Data)
		if err != nil {
			return nil, fmt.Errorf("entity: encode data for %s/%s: %w", r.ID, r.Node, err)
		}
		data = raw
	}
	return json.Marshal(wireRecord{
		ID:       r.ID,
		Node:     r.Node,
		Parent:   r.Parent,
		Children: r.Children,
		Markers:  r.Markers,
		Data:     data,
	})
}

func decodeRecord(raw []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(raw, &w); err != nil {
		return Record{}, fmt.Errorf("entity: decode record: %w", err)
	}
	var data any
	if len(w.Data) > 0 {
		decoded, err := decodeData(w.Node, w.Data)
		if err != nil {
			return Record{}, err
		}
		data = decoded
	}
	return Record{
		ID:       w.ID,
		Node:     w.Node,
		Data:     data,
		Parent:   w.Parent,
		Children: w.Children,
		Markers:  w.Markers,
	}, nil
}

// decodeData unmarshals raw into the concrete pkg/node data struct that
// corresponds to kind, returning it by value (matching what Builder
// stores for the same kind).
func decodeData(kind node.Kind, raw json.RawMessage) (any, error) {
	fail := func(err error) (any, error) {
		return nil, fmt.Errorf("entity: decode %s data: %w", kind, err)
	}
	switch kind {
	case node.Heading:
		var d node.HeadingData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.CodeBlock:
		var d node.CodeBlockData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.ListMarker:
		var d node.ListMarkerData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.Table:
		var d node.TableData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.Image:
		var d node.ImageData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.Link:
		var d node.LinkData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.FootnoteDefinition:
		var d node.FootnoteDefinitionData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.FootnoteRef:
		var d node.FootnoteRefData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.HTMLBlock, node.HTMLInline:
		var d node.HTMLData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.TaskListCheck:
		var d node.TaskListCheckData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	case node.TextNode:
		var d node.TextData
		if err := json.Unmarshal(raw, &d); err != nil {
			return fail(err)
		}
		return d, nil
	default:
		return nil, nil
	}
}
