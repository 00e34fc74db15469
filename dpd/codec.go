package dpd

// codec.go - persistence boundary; decode(encode(x)) reproduces
// bit-identical parameters and sufficient statistics.

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type sharedWire struct {
	Gamma, Alpha, Beta0 float64
	Betas               []float64
}

// MarshalBinary encodes the Shared parameters, including any support
// symbols added by Grow.
func (s *Shared) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := sharedWire{Gamma: s.gamma, Alpha: s.alpha, Beta0: s.beta0, Betas: s.betas}
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, fmt.Errorf("dpd: encode shared: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into s, replacing its contents. The decoded
// weights are restored verbatim (no renormalization), so grown supports
// survive the round trip bit-for-bit.
func (s *Shared) UnmarshalBinary(data []byte) error {
	var w sharedWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("dpd: decode shared: %w", err)
	}
	s.gamma = w.Gamma
	s.alpha = w.Alpha
	s.beta0 = w.Beta0
	s.betas = w.Betas
	return nil
}

// groupWire mirrors Group without its codec methods so that gob does
// not re-enter MarshalBinary/UnmarshalBinary while encoding the fields.
type groupWire Group

// MarshalBinary encodes the group's sufficient statistics.
func (g *Group) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(groupWire(*g)); err != nil {
		return nil, fmt.Errorf("dpd: encode group: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into g, replacing its contents.
func (g *Group) UnmarshalBinary(data []byte) error {
	var w groupWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("dpd: decode group: %w", err)
	}
	if w.Counts == nil {
		w.Counts = make(map[int]int64)
	}
	*g = Group(w)
	return nil
}
