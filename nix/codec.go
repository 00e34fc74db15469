package nix

// codec.go - persistence boundary; decode(encode(x)) reproduces
// bit-identical sufficient statistics (gob transports float64 exactly).

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

type sharedWire struct {
	Mu0, Kappa0, Sigsq0, Nu0 float64
}

// MarshalBinary encodes the Shared prior.
func (s *Shared) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := sharedWire{Mu0: s.mu0, Kappa0: s.kappa0, Sigsq0: s.sigsq0, Nu0: s.nu0}
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, fmt.Errorf("nix: encode shared: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into s, replacing its contents.
func (s *Shared) UnmarshalBinary(data []byte) error {
	var w sharedWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("nix: decode shared: %w", err)
	}
	ns, err := New(w.Mu0, w.Kappa0, w.Sigsq0, w.Nu0)
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
		return nil, fmt.Errorf("nix: encode group: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes into g, replacing its contents.
func (g *Group) UnmarshalBinary(data []byte) error {
	var w groupWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("nix: decode group: %w", err)
	}
	*g = Group(w)
	return nil
}
