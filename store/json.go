package store

import (
	"encoding/json"
	"fmt"

	"github.com/erezak/overlay-scribe/errorsx"
	"github.com/erezak/overlay-scribe/model"
)

// itemEnvelope is the wire form of a model.Item: a "type" discriminator
// plus its fields under "data", mirroring the
// `#[serde(tag = "type", content = "data")]` Rust enum this was
// distilled from (original_source/core/overlay_scribe_core/src/model.rs).
type itemEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type documentV2 struct {
	Version uint32         `json:"version"`
	Items   []itemEnvelope `json:"items"`
}

type documentV1 struct {
	Version uint32         `json:"version"`
	Strokes []model.Stroke `json:"strokes"`
}

// MarshalDocument encodes doc as the current-version (v2) wire form.
func MarshalDocument(doc model.Document) (string, error) {
	items := make([]itemEnvelope, 0, len(doc.Items))
	for _, it := range doc.Items {
		env, err := marshalItem(it)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		items = append(items, env)
	}
	out := documentV2{Version: model.CurrentVersion, Items: items}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return string(b), nil
}

func marshalItem(it model.Item) (itemEnvelope, error) {
	switch v := it.(type) {
	case *model.Stroke:
		data, err := json.Marshal(v)
		return itemEnvelope{Type: "stroke", Data: data}, err
	case *model.Shape:
		data, err := json.Marshal(v)
		return itemEnvelope{Type: "shape", Data: data}, err
	default:
		return itemEnvelope{}, fmt.Errorf("unknown item type %T", it)
	}
}

// UnmarshalDocument decodes data as a Document, trying the current
// (v2) schema first and falling back to the legacy v1 strokes-only
// schema (upgraded to v2 in memory) if v2 decoding fails or the
// version field isn't 2.
func UnmarshalDocument(data string) (model.Document, error) {
	var v2 documentV2
	if err := json.Unmarshal([]byte(data), &v2); err == nil && v2.Version == model.CurrentVersion {
		items, err := unmarshalItems(v2.Items)
		if err != nil {
			return model.Document{}, fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		return model.Document{Version: model.CurrentVersion, Items: items}, nil
	}

	var v1 documentV1
	if err := json.Unmarshal([]byte(data), &v1); err == nil && v1.Version == 1 {
		items := make([]model.Item, 0, len(v1.Strokes))
		for i := range v1.Strokes {
			s := v1.Strokes[i]
			items = append(items, &s)
		}
		return model.Document{Version: model.CurrentVersion, Items: items}, nil
	}

	err := fmt.Errorf("%w: unrecognized document schema", ErrSerialization)
	return model.Document{}, errorsx.Log(err)
}

func unmarshalItems(envs []itemEnvelope) ([]model.Item, error) {
	items := make([]model.Item, 0, len(envs))
	for _, env := range envs {
		switch env.Type {
		case "stroke":
			var s model.Stroke
			if err := json.Unmarshal(env.Data, &s); err != nil {
				return nil, err
			}
			items = append(items, &s)
		case "shape":
			var sh model.Shape
			if err := json.Unmarshal(env.Data, &sh); err != nil {
				return nil, err
			}
			if sh.TextAlignH == "" {
				sh.TextAlignH = model.AlignCenter
			}
			if sh.TextAlignV == "" {
				sh.TextAlignV = model.AlignMiddle
			}
			items = append(items, &sh)
		default:
			return nil, fmt.Errorf("unknown item type %q", env.Type)
		}
	}
	return items, nil
}

// ToJSON encodes the store's current state as the v2 wire form.
func (s *Store) ToJSON() (string, error) {
	return MarshalDocument(s.Document())
}

// LoadJSON decodes data and loads it as the store's new state,
// exactly as LoadDocument would. It returns a serialization error
// (logged) without mutating the store if data cannot be decoded.
func (s *Store) LoadJSON(data string) error {
	doc, err := UnmarshalDocument(data)
	if err != nil {
		return errorsx.Log(err)
	}
	s.LoadDocument(doc)
	return nil
}
