package gampois

// codec.go - persistence boundary; same contract as the other families:
// decode(encode(x)) reproduces bit-identical sufficient statistics.

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type sharedWire struct {
	Alpha, Beta float64
}

// MarshalBinary encodes the Shared hyperparameters.
func (s *Shared) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sharedWire{Alpha: s.alpha, Beta: s.beta}); err != nil {
		return nil, fmt.Errorf("gampois: encode shared: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into s, replacing its contents.
func (s *Shared) UnmarshalBinary(data []byte) error {
	var w sharedWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("gampois: decode shared: %w", err)
	}
	ns, err := New(w.Alpha, w.Beta)
	if err != nil {
		return err
	}
	*s = *ns
	return nil
}

// groupWire mirrors Group without its codec methods so that gob does
// not re-enter MarshalBinary/UnmarshalBinary while encoding the fields.
type groupWire Group

// MarshalBinary encodes the group's sufficient statistics.
func (g *Group) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(groupWire(*g)); err != nil {
		return nil, fmt.Errorf("gampois: encode group: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into g, replacing its contents.
func (g *Group) UnmarshalBinary(data []byte) error {
	var w groupWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("gampois: decode group: %w", err)
	}
	if w.Counts == nil {
		w.Counts = make(map[int64]int64)
	}
	*g = Group(w)
	return nil
}
