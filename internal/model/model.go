// Package model holds the typed in-memory form of a parsed project:
// global settings, ordered scenes, per-scene timeline objects and their
// nested effects. The transform stages operate on this model only; raw
// project text never reaches them.
package model

import (
	"github.com/okawa/aupshift/internal/aup"
)

// Effect is a nested sub-record of an object, addressed by its dotted
// sub-index (effect 0 of object 2 is 2.0). Effects are carried
// verbatim: no transform stage reads or rewrites their fields.
type Effect struct {
	Index  int
	Fields aup.FieldList
}

// Object is one timeline object. Layer, SceneID and the inclusive
// frame range are the only attributes any transform rewrites; Extra
// preserves every other parsed field in original order.
type Object struct {
	ID         int
	SceneID    int
	Layer      int
	FrameStart int
	FrameEnd   int
	Focus      bool
	Effects    []Effect
	Extra      aup.FieldList
}

// Duration returns FrameEnd-FrameStart. Compaction preserves it for
// every object.
func (o *Object) Duration() int {
	return o.FrameEnd - o.FrameStart
}

// Overlaps reports whether two inclusive frame ranges intersect.
func (o *Object) Overlaps(other *Object) bool {
	return o.FrameStart <= other.FrameEnd && other.FrameStart <= o.FrameEnd
}

// Scene owns the objects whose scene field names it. Explicit records
// whether the input carried a [scene.N] header: scene 0 usually does
// not, and the writer must not invent one.
type Scene struct {
	ID       int
	Explicit bool
	Fields   aup.FieldList
	Objects  []*Object
}

// Project is the whole editable document. Scene order is input order
// and is preserved through every transform.
type Project struct {
	Global aup.FieldList
	Scenes []*Scene
}

// SceneByID returns the scene with the given id, or nil.
func (p *Project) SceneByID(id int) *Scene {
	for _, s := range p.Scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Objects returns every object across all scenes in scene order.
func (p *Project) Objects() []*Object {
	var out []*Object
	for _, s := range p.Scenes {
		out = append(out, s.Objects...)
	}
	return out
}

// ObjectCount returns the total number of objects in the project.
func (p *Project) ObjectCount() int {
	n := 0
	for _, s := range p.Scenes {
		n += len(s.Objects)
	}
	return n
}

// LayerDistribution counts objects per layer across the project.
func (p *Project) LayerDistribution() map[int]int {
	dist := make(map[int]int)
	for _, s := range p.Scenes {
		for _, o := range s.Objects {
			dist[o.Layer]++
		}
	}
	return dist
}

// Clone returns a deep copy sharing no state with the original.
func (p *Project) Clone() *Project {
	out := &Project{Global: p.Global.Clone()}
	for _, s := range p.Scenes {
		sc := &Scene{ID: s.ID, Explicit: s.Explicit, Fields: s.Fields.Clone()}
		for _, o := range s.Objects {
			oc := *o
			oc.Extra = o.Extra.Clone()
			oc.Effects = make([]Effect, len(o.Effects))
			for i, e := range o.Effects {
				oc.Effects[i] = Effect{Index: e.Index, Fields: e.Fields.Clone()}
			}
			sc.Objects = append(sc.Objects, &oc)
		}
		out.Scenes = append(out.Scenes, sc)
	}
	return out
}
