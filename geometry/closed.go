package geometry

import "github.com/erezak/overlay-scribe/model"

// ClosedShapeKind is the subset of model.ShapeKind that is closed:
// eligible as an arrow attachment target and as a routing obstacle.
type ClosedShapeKind string

const (
	ClosedRectangle        ClosedShapeKind = "rectangle"
	ClosedRoundedRectangle ClosedShapeKind = "rounded_rectangle"
	ClosedEllipse          ClosedShapeKind = "ellipse"
)

// ClosedShapeKindOf returns the ClosedShapeKind for k and true if k is
// closed, or the zero value and false otherwise.
func ClosedShapeKindOf(k model.ShapeKind) (ClosedShapeKind, bool) {
	switch k {
	case model.Rectangle:
		return ClosedRectangle, true
	case model.RoundedRectangle:
		return ClosedRoundedRectangle, true
	case model.Ellipse:
		return ClosedEllipse, true
	default:
		return "", false
	}
}

// ClosedShapeHit is a closed shape as seen by the obstacle/attachment
// search: just enough to classify it and test containment or anchor
// against it.
type ClosedShapeHit struct {
	ID   uint64
	Kind ClosedShapeKind
	Rect Rect
}

// RectForShape derives a shape's axis-aligned bounding rectangle from
// its two endpoints.
func RectForShape(s *model.Shape) Rect {
	return FromPoints(s.Start, s.End)
}

// CollectClosedShapes enumerates, in document order, every closed
// shape present in items. Order is preserved because obstacle
// iteration and tie-breaking in the routing engine must be
// deterministic.
func CollectClosedShapes(items []model.Item) []ClosedShapeHit {
	out := make([]ClosedShapeHit, 0, len(items))
	for _, it := range items {
		sh, ok := it.(*model.Shape)
		if !ok {
			continue
		}
		kind, ok := ClosedShapeKindOf(sh.Kind)
		if !ok {
			continue
		}
		out = append(out, ClosedShapeHit{
			ID:   sh.ID,
			Kind: kind,
			Rect: RectForShape(sh),
		})
	}
	return out
}
