package dirichlet

// codec.go - persistence boundary. The external collaborator owns the
// outer wire schema; these methods only guarantee that
// decode(encode(x)) reproduces bit-identical sufficient statistics.

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// sharedWire is the encoded form of Shared; the cached concentration sum
// is recomputed on decode by the same left-to-right summation as New,
// so the reconstructed Shared is bit-identical.
type sharedWire struct {
	Alphas []float64
}

// MarshalBinary encodes the Shared hyperparameters.
func (s *Shared) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sharedWire{Alphas: s.alphas}); err != nil {
		return nil, fmt.Errorf("dirichlet: encode shared: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into s, replacing its contents.
func (s *Shared) UnmarshalBinary(data []byte) error {
	var w sharedWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("dirichlet: decode shared: %w", err)
	}
	ns, err := New(w.Alphas)
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
		return nil, fmt.Errorf("dirichlet: encode group: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into g, replacing its contents.
func (g *Group) UnmarshalBinary(data []byte) error {
	var w groupWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("dirichlet: decode group: %w", err)
	}
	*g = Group(w)
	return nil
}
