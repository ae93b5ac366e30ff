package model

// ShapeKind discriminates the five shape flavors a document can
// contain. The first three are closed shapes, eligible as arrow
// attachment targets and obstacles; the last two are arrow-like.
type ShapeKind string

const (
	Rectangle        ShapeKind = "rectangle"
	RoundedRectangle ShapeKind = "rounded_rectangle"
	Ellipse          ShapeKind = "ellipse"
	Arrow            ShapeKind = "arrow"
	CurvedArrow      ShapeKind = "curved_arrow"
)

// IsClosed reports whether k is one of the closed shape kinds.
func (k ShapeKind) IsClosed() bool {
	switch k {
	case Rectangle, RoundedRectangle, Ellipse:
		return true
	default:
		return false
	}
}

// IsArrowLike reports whether k is a connector (straight or curved).
func (k ShapeKind) IsArrowLike() bool {
	return k == Arrow || k == CurvedArrow
}

// HAlign is the horizontal text alignment within a shape.
type HAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is the vertical text alignment within a shape.
type VAlign string

const (
	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// ShapeStyle carries the paint attributes of a shape, independent of
// its geometry.
type ShapeStyle struct {
	StrokeColor  Color   `json:"stroke_color"`
	StrokeWidth  float32 `json:"stroke_width"`
	FillEnabled  bool    `json:"fill_enabled"`
	FillColor    Color   `json:"fill_color"`
	HatchEnabled bool    `json:"hatch_enabled"`
	CornerRadius float32 `json:"corner_radius"`
}

// Shape is a parametric primitive: a rectangle, rounded rectangle,
// ellipse, or one of the two arrow kinds. Start/End are the two
// endpoints defining its axis-aligned bounding rectangle (for closed
// shapes) or its connector geometry (for arrow-like shapes); they are
// not constrained to have Start <= End componentwise.
type Shape struct {
	ID    uint64     `json:"id"`
	Kind  ShapeKind  `json:"kind"`
	Style ShapeStyle `json:"style"`
	Start Point      `json:"start"`
	End   Point      `json:"end"`

	// StartAttachID/EndAttachID, when non-nil, name a closed shape
	// whose boundary pins the corresponding endpoint. An id that does
	// not (or no longer) reference a closed shape present in the
	// document is treated as absent.
	StartAttachID *uint64 `json:"start_attach_id"`
	EndAttachID   *uint64 `json:"end_attach_id"`

	// StartAttachUV/EndAttachUV, when non-nil, select a point within
	// the attached shape's rectangle (components clamped to [0,1] on
	// every use, never renormalized in storage); the anchor is the
	// boundary intersection of a ray from the shape's center through
	// that point.
	StartAttachUV *Point `json:"start_attach_uv"`
	EndAttachUV   *Point `json:"end_attach_uv"`

	Text         string `json:"text"`
	TextAlignH   HAlign `json:"text_align_h"`
	TextAlignV   VAlign `json:"text_align_v"`
}

// Clone returns a deep copy of the shape, safe to mutate independently
// of the original.
func (s *Shape) Clone() *Shape {
	c := *s
	if s.StartAttachID != nil {
		v := *s.StartAttachID
		c.StartAttachID = &v
	}
	if s.EndAttachID != nil {
		v := *s.EndAttachID
		c.EndAttachID = &v
	}
	if s.StartAttachUV != nil {
		v := *s.StartAttachUV
		c.StartAttachUV = &v
	}
	if s.EndAttachUV != nil {
		v := *s.EndAttachUV
		c.EndAttachUV = &v
	}
	return &c
}

func (*Shape) isItem() {}

func (s *Shape) itemID() uint64 { return s.ID }
