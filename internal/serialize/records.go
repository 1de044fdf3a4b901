// Package serialize re-linearizes a transformed project into the
// structural record form the project writer consumes, and offers a
// plain-text dump for inspection. It performs no semantic transform:
// effects and unrecognized fields pass through exactly as parsed.
package serialize

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/okawa/aupshift/internal/aup"
	"github.com/okawa/aupshift/internal/model"
)

// Records builds the output document: the global block verbatim,
// scenes in model order, and within each scene its objects ascending
// by original id. Object ids are renumbered densely from 0 in emission
// order; every effect follows its owner under the new id with its
// original sub-index and untouched fields. A scene header is emitted
// only when the input carried one.
func Records(p *model.Project) *aup.Document {
	doc := &aup.Document{}
	doc.Sections = append(doc.Sections, aup.Section{Name: "project", Fields: p.Global.Clone()})

	next := 0
	for _, sc := range p.Scenes {
		if sc.Explicit {
			doc.Sections = append(doc.Sections, aup.Section{
				Name:   fmt.Sprintf("scene.%d", sc.ID),
				Fields: sc.Fields.Clone(),
			})
		}
		for _, o := range sortedByID(sc.Objects) {
			id := next
			next++
			doc.Sections = append(doc.Sections, aup.Section{
				Name:   strconv.Itoa(id),
				Fields: objectFields(o),
			})
			for _, e := range o.Effects {
				doc.Sections = append(doc.Sections, aup.Section{
					Name:   fmt.Sprintf("%d.%d", id, e.Index),
					Fields: e.Fields.Clone(),
				})
			}
		}
	}
	return doc
}

// objectFields emits layer, frame and focus first, then the scene
// binding for non-default scenes, then every pass-through field in its
// original order.
func objectFields(o *model.Object) aup.FieldList {
	fields := aup.FieldList{
		{Key: "layer", Value: strconv.Itoa(o.Layer)},
		{Key: "frame", Value: fmt.Sprintf("%d,%d", o.FrameStart, o.FrameEnd)},
	}
	if o.Focus {
		fields = append(fields, aup.Field{Key: "focus", Value: "1"})
	}
	if o.SceneID != 0 {
		fields = append(fields, aup.Field{Key: "scene", Value: strconv.Itoa(o.SceneID)})
	}
	return append(fields, o.Extra.Clone()...)
}

func sortedByID(objects []*model.Object) []*model.Object {
	out := make([]*model.Object, len(objects))
	copy(out, objects)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
