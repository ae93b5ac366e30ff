package model

// Stroke is a freehand paint stroke: an ordered polyline with a
// uniform color and width. Points always has length >= 1.
type Stroke struct {
	ID     uint64  `json:"id"`
	Color  Color   `json:"color"`
	Width  float32 `json:"width"`
	Points []Point `json:"points"`
}

// Clone returns a deep copy of the stroke, safe to mutate independently
// of the original.
func (s *Stroke) Clone() *Stroke {
	c := *s
	c.Points = make([]Point, len(s.Points))
	copy(c.Points, s.Points)
	return &c
}

func (*Stroke) isItem() {}

// itemID identifies s within a document.
func (s *Stroke) itemID() uint64 { return s.ID }
