// Package aup reads and writes the textual structure of AviUtl aup2
// project files: a flat sequence of [header] sections, each holding
// ordered key=value fields. The package knows nothing about layers or
// frames; it only turns text into sections and back.
package aup

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Section is one [name] block and its fields. Recognized name shapes
// are "project", "scene.N", a bare object id "N" and an effect id
// "N.K"; anything else is carried through untouched.
type Section struct {
	Name   string
	Fields FieldList
}

// IsProject reports whether this is the global [project] block.
func (s *Section) IsProject() bool {
	return s.Name == "project"
}

// SceneID returns the scene id for a [scene.N] section.
func (s *Section) SceneID() (int, bool) {
	rest, ok := strings.CutPrefix(s.Name, "scene.")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// ObjectID returns the object id for a bare numeric [N] section.
func (s *Section) ObjectID() (int, bool) {
	id, err := strconv.Atoi(s.Name)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// EffectID returns the owning object id and effect sub-index for a
// dotted [N.K] section.
func (s *Section) EffectID() (owner, index int, ok bool) {
	head, tail, found := strings.Cut(s.Name, ".")
	if !found {
		return 0, 0, false
	}
	owner, err := strconv.Atoi(head)
	if err != nil || owner < 0 {
		return 0, 0, false
	}
	index, err = strconv.Atoi(tail)
	if err != nil || index < 0 {
		return 0, 0, false
	}
	return owner, index, true
}

// Document is a parsed project file: sections in file order.
type Document struct {
	Sections []Section
}

// WriteTo re-linearizes the document. Output is the exact inverse of
// Parse for any document Parse produced.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for i := range d.Sections {
		s := &d.Sections[i]
		c, err := fmt.Fprintf(w, "[%s]\n", s.Name)
		n += int64(c)
		if err != nil {
			return n, err
		}
		for _, f := range s.Fields {
			c, err := fmt.Fprintf(w, "%s=%s\n", f.Key, f.Value)
			n += int64(c)
			if err != nil {
				return n, err
			}
		}
	}
	return n, nil
}
