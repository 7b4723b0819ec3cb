package colfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseDescriptors decodes a YAML sequence of column descriptors, so
// hosts can ship column layouts as configuration:
//
//	- extractor: name
//	  width: 30
//	- extractor: mode
//	  width: 12
//	  style: dim
//
// Unknown keys and missing extractor names fail with
// [ErrInvalidDescriptors]. Width positivity and extractor resolution are
// checked later by [Compile], not here.
func ParseDescriptors(data []byte) ([]Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var descs []Descriptor
	if err := dec.Decode(&descs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptors, err)
	}
	for i, d := range descs {
		if d.Extractor == "" {
			return nil, fmt.Errorf("%w: descriptor %d has no extractor name", ErrInvalidDescriptors, i)
		}
	}
	return descs, nil
}
