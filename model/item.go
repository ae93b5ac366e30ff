package model

// Item is either a Stroke or a Shape. It is the Go analogue of the
// tagged union `enum Item { Stroke(Stroke), Shape(Shape) }` in the
// original Rust core: an interface implemented by *Stroke and *Shape,
// discriminated at the JSON boundary by an explicit "type" field.
type Item interface {
	isItem()
	itemID() uint64
}

// ID returns the item's unique id, regardless of its concrete kind.
func ID(it Item) uint64 { return it.itemID() }

// CloneItem returns a deep copy of it, preserving its concrete kind.
func CloneItem(it Item) Item {
	switch v := it.(type) {
	case *Stroke:
		return v.Clone()
	case *Shape:
		return v.Clone()
	default:
		return it
	}
}

// Equal reports whether a and b are the same item by value: same
// concrete kind and identical field contents. Used by the edit
// journal to locate the positional match of a value being undone.
func Equal(a, b Item) bool {
	switch av := a.(type) {
	case *Stroke:
		bv, ok := b.(*Stroke)
		if !ok {
			return false
		}
		return strokeEqual(av, bv)
	case *Shape:
		bv, ok := b.(*Shape)
		if !ok {
			return false
		}
		return shapeEqual(av, bv)
	default:
		return false
	}
}

func strokeEqual(a, b *Stroke) bool {
	if a == b {
		return true
	}
	if a.ID != b.ID || a.Color != b.Color || a.Width != b.Width {
		return false
	}
	if len(a.Points) != len(b.Points) {
		return false
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			return false
		}
	}
	return true
}

func uint64PtrEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func pointPtrEqual(a, b *Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func shapeEqual(a, b *Shape) bool {
	if a == b {
		return true
	}
	return a.ID == b.ID &&
		a.Kind == b.Kind &&
		a.Style == b.Style &&
		a.Start == b.Start &&
		a.End == b.End &&
		uint64PtrEqual(a.StartAttachID, b.StartAttachID) &&
		uint64PtrEqual(a.EndAttachID, b.EndAttachID) &&
		pointPtrEqual(a.StartAttachUV, b.StartAttachUV) &&
		pointPtrEqual(a.EndAttachUV, b.EndAttachUV) &&
		a.Text == b.Text &&
		a.TextAlignH == b.TextAlignH &&
		a.TextAlignV == b.TextAlignV
}
