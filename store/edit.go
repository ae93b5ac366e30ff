package store

import "github.com/erezak/overlay-scribe/model"

// editKind discriminates the edit journal's record variants.
type editKind int

const (
	editAddItem editKind = iota
	editRemoveItem
	editReplaceItem
	editReplaceAll
)

// edit is one journal entry. Only the fields relevant to its kind are
// populated; this mirrors the Rust `enum Edit` in the original core,
// expressed as a single struct rather than an interface hierarchy
// since the store is the only consumer and every variant is a plain
// data record with no behavior of its own.
type edit struct {
	kind editKind

	index int // RemoveItem, ReplaceItem: position in the item list

	item   model.Item // AddItem, RemoveItem
	before model.Item // ReplaceItem
	after  model.Item

	beforeAll []model.Item // ReplaceAll
	afterAll  []model.Item
}

func addItemEdit(it model.Item) edit {
	return edit{kind: editAddItem, item: it}
}

func removeItemEdit(index int, it model.Item) edit {
	return edit{kind: editRemoveItem, index: index, item: it}
}

func replaceItemEdit(index int, before, after model.Item) edit {
	return edit{kind: editReplaceItem, index: index, before: before, after: after}
}

func replaceAllEdit(before, after []model.Item) edit {
	return edit{kind: editReplaceAll, beforeAll: before, afterAll: after}
}

// applyEdit performs e against items, returning the updated slice.
func applyEdit(items []model.Item, e edit) []model.Item {
	switch e.kind {
	case editAddItem:
		return append(items, e.item)
	case editRemoveItem:
		if e.index >= 0 && e.index < len(items) {
			return append(items[:e.index:e.index], items[e.index+1:]...)
		}
		return items
	case editReplaceItem:
		if e.index >= 0 && e.index < len(items) {
			items[e.index] = e.after
		}
		return items
	case editReplaceAll:
		return model.CloneItems(e.afterAll)
	default:
		return items
	}
}

// unapplyEdit performs the inverse of e against items, returning the
// updated slice and the edit that undoes this unapply (i.e. redoes
// e). Inverses are recomputed here, at unapply time, rather than
// precomputed and cached, so that value equality survives repeated
// undo/redo round-trips (spec.md §4.1).
func unapplyEdit(items []model.Item, e edit) ([]model.Item, edit) {
	switch e.kind {
	case editAddItem:
		index := indexOfByValue(items, e.item)
		if index < 0 {
			index = len(items) - 1
		}
		if index >= 0 && index < len(items) {
			items = append(items[:index:index], items[index+1:]...)
		}
		return items, removeItemEdit(index, e.item)

	case editRemoveItem:
		insertAt := e.index
		if insertAt > len(items) {
			insertAt = len(items)
		}
		if insertAt < 0 {
			insertAt = 0
		}
		items = append(items, nil)
		copy(items[insertAt+1:], items[insertAt:])
		items[insertAt] = e.item
		return items, addItemEdit(e.item)

	case editReplaceItem:
		if e.index >= 0 && e.index < len(items) {
			items[e.index] = e.before
		}
		return items, replaceItemEdit(e.index, e.after, e.before)

	case editReplaceAll:
		restored := model.CloneItems(e.beforeAll)
		return restored, replaceAllEdit(e.afterAll, e.beforeAll)

	default:
		return items, e
	}
}

// indexOfByValue returns the index of the first item positionally
// equal by value to target, or -1 if none is found.
func indexOfByValue(items []model.Item, target model.Item) int {
	for i, it := range items {
		if model.Equal(it, target) {
			return i
		}
	}
	return -1
}
