package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// KeyID is the canonical (uppercase) identifier of a logical key, e.g. "LEFT"
// or "W".
type KeyID string

// The named key identifiers. Any other key is identified by its uppercased
// character.
const (
	KeyIDSpace KeyID = "SPACE"
	KeyIDLeft  KeyID = "LEFT"
	KeyIDRight KeyID = "RIGHT"
	KeyIDUp    KeyID = "UP"
	KeyIDDown  KeyID = "DOWN"
)

// KeyEntry ties a KeyID to the runtime's name for the key and a short label
// used in menus.
type KeyEntry struct {
	ID       KeyID
	HostName string
	Short    string
}

// DefaultKeyEntries are the entries of the default key table.
func DefaultKeyEntries() []KeyEntry {
	return []KeyEntry{
		{ID: KeyIDSpace, HostName: "space", Short: "space"},
		{ID: KeyIDLeft, HostName: "left arrow", Short: "left"},
		{ID: KeyIDUp, HostName: "up arrow", Short: "up"},
		{ID: KeyIDRight, HostName: "right arrow", Short: "right"},
		{ID: KeyIDDown, HostName: "down arrow", Short: "down"},
	}
}

// KeyTable is a validated bidirectional mapping between KeyIDs and the
// runtime's key names.
type KeyTable struct {
	entries []KeyEntry
	byID    map[KeyID]KeyEntry
	byHost  map[string]KeyID
}

// NewKeyTable validates the given entries and returns the table for them.
// Entries must be complete and neither IDs nor host names may repeat.
func NewKeyTable(entries []KeyEntry) (*KeyTable, error) {
	t := &KeyTable{
		byID:   make(map[KeyID]KeyEntry, len(entries)),
		byHost: make(map[string]KeyID, len(entries)),
	}
	for i, e := range entries {
		id := KeyID(strings.ToUpper(strings.TrimSpace(string(e.ID))))
		host := strings.ToLower(strings.TrimSpace(e.HostName))
		switch {
		case id == "" || host == "":
			return nil, fmt.Errorf("key entry %d is incomplete (id '%s', host name '%s')", i, e.ID, e.HostName)
		case strings.ContainsAny(string(id), " \t"):
			return nil, fmt.Errorf("key id '%s' contains whitespace", e.ID)
		}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("duplicate key id '%s'", id)
		}
		if other, dup := t.byHost[host]; dup {
			return nil, fmt.Errorf("host key name '%s' mapped to both '%s' and '%s'", host, other, id)
		}
		short := e.Short
		if short == "" {
			short = strings.ToLower(string(id))
		}
		entry := KeyEntry{ID: id, HostName: host, Short: short}
		t.entries = append(t.entries, entry)
		t.byID[id] = entry
		t.byHost[host] = id
	}
	return t, nil
}

// DefaultKeyTable returns the table for DefaultKeyEntries.
func DefaultKeyTable() *KeyTable {
	t, err := NewKeyTable(DefaultKeyEntries())
	if err != nil {
		panic(fmt.Sprintf("default key table invalid: %s", err.Error()))
	}
	return t
}

// Entries returns the table's entries in their configured order.
func (t *KeyTable) Entries() []KeyEntry {
	return append([]KeyEntry(nil), t.entries...)
}

// Normalize maps a runtime key name (e.g. "left arrow") to its KeyID.
//
// Names in the table map to their entry. Otherwise a single character maps to
// itself uppercased, and any other name to its first word uppercased.
func (t *KeyTable) Normalize(hostName string) KeyID {
	name := strings.TrimSpace(hostName)
	if id, ok := t.byHost[strings.ToLower(name)]; ok {
		return id
	}
	if utf8.RuneCountInString(name) == 1 {
		return KeyID(strings.ToUpper(name))
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return KeyID(strings.ToUpper(fields[0]))
}

// HostName maps a key argument (a KeyID or a literal key, case insensitive)
// to the runtime's name for that key.
func (t *KeyTable) HostName(key string) string {
	if e, ok := t.byID[KeyID(strings.ToUpper(strings.TrimSpace(key)))]; ok {
		return e.HostName
	}
	return strings.ToLower(key)
}

// Short returns the short menu label for the given KeyID.
func (t *KeyTable) Short(id KeyID) string {
	if e, ok := t.byID[id]; ok {
		return e.Short
	}
	return strings.ToLower(string(id))
}

// ParseKeyIDs splits a space separated key sequence specification into its
// KeyIDs, uppercasing them.
func ParseKeyIDs(spec string) []KeyID {
	fields := strings.Fields(strings.ToUpper(spec))
	ids := make([]KeyID, len(fields))
	for i, f := range fields {
		ids[i] = KeyID(f)
	}
	return ids
}

// JoinKeyIDs returns the canonical string form of a key sequence.
func JoinKeyIDs(ids []KeyID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}
