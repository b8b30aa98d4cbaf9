package types

import (
	"strings"

	"github.com/tidwall/btree"
)

const btreeDegrees = 64

type dataItem struct {
	key   string
	value []byte
}

// Less orders items by key
func (it *dataItem) Less(than btree.Item, ctx interface{}) bool {
	return it.key < than.(*dataItem).key
}

// stateStore keeps the committed data ordered by key
type stateStore struct {
	tree *btree.BTree
}

func newStateStore() *stateStore {
	return &stateStore{
		tree: btree.New(btreeDegrees, nil),
	}
}

func (st *stateStore) get(key string) ([]byte, bool) {
	item := st.tree.Get(&dataItem{key: key})
	if item == nil {
		return nil, false
	}
	return item.(*dataItem).value, true
}

func (st *stateStore) set(key string, value []byte) {
	st.tree.ReplaceOrInsert(&dataItem{key: key, value: value})
}

func (st *stateStore) delete(key string) {
	st.tree.Delete(&dataItem{key: key})
}

func (st *stateStore) len() int {
	return st.tree.Len()
}

// ascend iterates the keys having the prefix in order
func (st *stateStore) ascend(prefix string, fn func(key string, value []byte) bool) {
	st.tree.AscendGreaterOrEqual(&dataItem{key: prefix}, func(item btree.Item) bool {
		it := item.(*dataItem)
		if !strings.HasPrefix(it.key, prefix) {
			return false
		}
		return fn(it.key, it.value)
	})
}
