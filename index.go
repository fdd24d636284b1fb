// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import "fmt"

// Index maps names to ids {0,...,N-1} and back.
type Index struct {
	names []string
	ids   map[string]int
}

// NewIndex creates an index. The id of a name is its position in names.
// Names must be unique.
func NewIndex(names []string) (*Index, error) {

	idx := &Index{
		names: append([]string(nil), names...),
		ids:   make(map[string]int, len(names)),
	}
	for k, v := range names {
		if _, ok := idx.ids[v]; ok {
			return nil, fmt.Errorf("duplicate name [%s]", v)
		}
		idx.ids[v] = k
	}
	return idx, nil
}

// Len returns the number of names.
func (idx *Index) Len() int { return len(idx.names) }

// ID returns the id for name.
func (idx *Index) ID(name string) (int, error) {
	id, ok := idx.ids[name]
	if !ok {
		return -1, fmt.Errorf("unknown name [%s]", name)
	}
	return id, nil
}

// IDs converts a sequence of names to ids.
func (idx *Index) IDs(names []string) ([]int, error) {
	ids := make([]int, len(names))
	for k, v := range names {
		id, e := idx.ID(v)
		if e != nil {
			return nil, e
		}
		ids[k] = id
	}
	return ids, nil
}

// Names converts a sequence of ids to names. Ids out of range map to "?".
func (idx *Index) Names(ids []int) []string {
	names := make([]string, len(ids))
	for k, v := range ids {
		if v < 0 || v >= len(idx.names) {
			names[k] = "?"
			continue
		}
		names[k] = idx.names[v]
	}
	return names
}
