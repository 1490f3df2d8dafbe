// Package query describes the read surface of the Roam host: string-based
// datalog queries, pull/pull-many hydration, and pull watches. The types
// here mirror the host's documented result and parameter objects; the
// interfaces record which operations the host answers synchronously and
// which through a deferred result.
package query

import (
	"encoding/json"
	"fmt"
)

// EntityRef is the lightweight pointer the host embeds in result records:
// a single internal database id, resolvable through a subsequent pull.
type EntityRef struct {
	DBID int64 `json:":db/id"`
}

// EntityID returns the identifier form accepted by pull parameters, so a
// reference extracted from one result can feed the next call directly.
func (r EntityRef) EntityID() EntityID {
	return DBID(r.DBID)
}

// EntityIDKind discriminates the three documented identifier forms.
type EntityIDKind int

// Identifier forms.
const (
	// EntityIDDBID is the internal numeric database id.
	EntityIDDBID EntityIDKind = iota
	// EntityIDUID is the unique-key string of a block or page.
	EntityIDUID
	// EntityIDLookup is a two-element (attribute, value) pair.
	EntityIDLookup
)

// EntityID identifies an entity in pull parameters. Exactly three wire
// forms exist: a number (internal db id), a string (unique key), and a
// two-element [attribute, value] array. Any other JSON form is rejected.
type EntityID struct {
	kind  EntityIDKind
	dbid  int64
	uid   string
	attr  string
	value string
}

// DBID builds an identifier from the internal numeric database id.
func DBID(id int64) EntityID {
	return EntityID{kind: EntityIDDBID, dbid: id}
}

// UID builds an identifier from a unique-key string.
func UID(uid string) EntityID {
	return EntityID{kind: EntityIDUID, uid: uid}
}

// Lookup builds a two-element (attribute, value) identifier, e.g.
// (":block/uid", "abc123XYZ").
func Lookup(attr, value string) EntityID {
	return EntityID{kind: EntityIDLookup, attr: attr, value: value}
}

// Kind reports which of the three forms the identifier carries.
func (id EntityID) Kind() EntityIDKind { return id.kind }

// DBID returns the numeric id and whether that form is carried.
func (id EntityID) DBID() (int64, bool) { return id.dbid, id.kind == EntityIDDBID }

// UID returns the unique key and whether that form is carried.
func (id EntityID) UID() (string, bool) { return id.uid, id.kind == EntityIDUID }

// Lookup returns the (attribute, value) pair and whether that form is
// carried.
func (id EntityID) Lookup() (attr, value string, ok bool) {
	return id.attr, id.value, id.kind == EntityIDLookup
}

func (id EntityID) String() string {
	switch id.kind {
	case EntityIDUID:
		return id.uid
	case EntityIDLookup:
		return fmt.Sprintf("[%s %s]", id.attr, id.value)
	default:
		return fmt.Sprintf("%d", id.dbid)
	}
}

// MarshalJSON emits the documented wire form for the carried kind.
func (id EntityID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case EntityIDUID:
		return json.Marshal(id.uid)
	case EntityIDLookup:
		return json.Marshal([2]string{id.attr, id.value})
	default:
		return json.Marshal(id.dbid)
	}
}

// UnmarshalJSON accepts a number, a string, or a two-element string
// array. Objects, booleans, null, and arrays of any other arity are
// rejected.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return fmt.Errorf("entity id: null is not a valid identifier")
	}
	var dbid int64
	if err := json.Unmarshal(data, &dbid); err == nil {
		*id = DBID(dbid)
		return nil
	}
	var uid string
	if err := json.Unmarshal(data, &uid); err == nil {
		*id = UID(uid)
		return nil
	}
	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("entity id: lookup form needs exactly 2 elements, got %d", len(pair))
		}
		*id = Lookup(pair[0], pair[1])
		return nil
	}
	return fmt.Errorf("entity id: expected number, string, or [attribute, value] pair")
}
