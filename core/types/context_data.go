package types

import (
	"fmt"
	"sort"
	"strings"
)

// ContextData is a snapshot layer over the committed state
type ContextData struct {
	Parent         *ContextData
	store          *stateStore
	DataMap        map[string][]byte
	DeletedDataMap map[string]bool
	Events         []*Event
}

// NewContextData returns a ContextData
func NewContextData(store *stateStore, Parent *ContextData) *ContextData {
	return &ContextData{
		Parent:         Parent,
		store:          store,
		DataMap:        map[string][]byte{},
		DeletedDataMap: map[string]bool{},
		Events:         []*Event{},
	}
}

// Data returns the value of the key from this layer, its parents or the committed state
func (ctd *ContextData) Data(key string) []byte {
	if v, has := ctd.DataMap[key]; has {
		return v
	}
	if ctd.DeletedDataMap[key] {
		return nil
	}
	if ctd.Parent != nil {
		return ctd.Parent.Data(key)
	}
	v, _ := ctd.store.get(key)
	return v
}

// SetData updates the value of the key, an empty value deletes it
func (ctd *ContextData) SetData(key string, value []byte) {
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
		return
	}
	bs := make([]byte, len(value))
	copy(bs, value)
	ctd.DataMap[key] = bs
	delete(ctd.DeletedDataMap, key)
}

// EmitEvent appends the event to this layer
func (ctd *ContextData) EmitEvent(e *Event) {
	ctd.Events = append(ctd.Events, e)
}

// mergeTo moves every change of this layer into the target layer
func (ctd *ContextData) mergeTo(top *ContextData) {
	for k, v := range ctd.DataMap {
		top.DataMap[k] = v
		delete(top.DeletedDataMap, k)
	}
	for k := range ctd.DeletedDataMap {
		delete(top.DataMap, k)
		top.DeletedDataMap[k] = true
	}
	top.Events = append(top.Events, ctd.Events...)
}

// Dump returns the changed keys of this layer
func (ctd *ContextData) Dump() string {
	keys := make([]string, 0, len(ctd.DataMap))
	for k := range ctd.DataMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%x: %x\n", k, ctd.DataMap[k])
	}
	for k := range ctd.DeletedDataMap {
		fmt.Fprintf(&b, "%x: deleted\n", k)
	}
	return b.String()
}
