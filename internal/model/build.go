package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okawa/aupshift/internal/aup"
)

// StructuralError reports a section missing (or carrying an unusable
// value for) a field the transform requires. It aborts the whole
// pipeline: the model is not usable without the field.
type StructuralError struct {
	Section string
	Field   string
	Reason  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("section [%s]: field %q %s", e.Section, e.Field, e.Reason)
}

// Build turns a parsed document into a Project. Object sections must
// carry layer and frame; effect sections attach to the object their
// dotted name references. Objects name their scene via the scene field
// (default 0); a scene without a [scene.N] header is created implicitly.
func Build(doc *aup.Document) (*Project, error) {
	p := &Project{}
	objects := make(map[int]*Object)

	for i := range doc.Sections {
		s := &doc.Sections[i]
		switch {
		case s.IsProject():
			p.Global = append(p.Global, s.Fields...)

		case isScene(s):
			id, _ := s.SceneID()
			sc := p.SceneByID(id)
			if sc == nil {
				sc = &Scene{ID: id}
				p.Scenes = append(p.Scenes, sc)
			}
			sc.Explicit = true
			sc.Fields = append(sc.Fields, s.Fields...)

		case isEffect(s):
			owner, index, _ := s.EffectID()
			obj, ok := objects[owner]
			if !ok {
				return nil, &StructuralError{Section: s.Name, Field: "owner", Reason: fmt.Sprintf("references unknown object %d", owner)}
			}
			obj.Effects = append(obj.Effects, Effect{Index: index, Fields: s.Fields.Clone()})

		case isObject(s):
			id, _ := s.ObjectID()
			obj, err := buildObject(id, s)
			if err != nil {
				return nil, err
			}
			if _, dup := objects[id]; dup {
				return nil, &StructuralError{Section: s.Name, Field: "id", Reason: "duplicates an earlier object id"}
			}
			objects[id] = obj
			attachObject(p, obj)

		default:
			return nil, &StructuralError{Section: s.Name, Field: "header", Reason: "is not a recognized section kind"}
		}
	}
	return p, nil
}

func isScene(s *aup.Section) bool {
	_, ok := s.SceneID()
	return ok
}

func isObject(s *aup.Section) bool {
	_, ok := s.ObjectID()
	return ok
}

func isEffect(s *aup.Section) bool {
	_, _, ok := s.EffectID()
	return ok
}

func buildObject(id int, s *aup.Section) (*Object, error) {
	obj := &Object{ID: id}
	seenLayer, seenFrame := false, false

	for _, f := range s.Fields {
		switch f.Key {
		case "layer":
			n, err := strconv.Atoi(strings.TrimSpace(f.Value))
			if err != nil || n < 0 {
				return nil, &StructuralError{Section: s.Name, Field: "layer", Reason: fmt.Sprintf("has invalid value %q", f.Value)}
			}
			obj.Layer = n
			seenLayer = true
		case "frame":
			start, end, err := parseFramePair(f.Value)
			if err != nil {
				return nil, &StructuralError{Section: s.Name, Field: "frame", Reason: err.Error()}
			}
			obj.FrameStart, obj.FrameEnd = start, end
			seenFrame = true
		case "scene":
			n, err := strconv.Atoi(strings.TrimSpace(f.Value))
			if err != nil || n < 0 {
				return nil, &StructuralError{Section: s.Name, Field: "scene", Reason: fmt.Sprintf("has invalid value %q", f.Value)}
			}
			obj.SceneID = n
		case "focus":
			obj.Focus = strings.TrimSpace(f.Value) != "0"
		default:
			obj.Extra = append(obj.Extra, f)
		}
	}

	if !seenLayer {
		return nil, &StructuralError{Section: s.Name, Field: "layer", Reason: "is missing"}
	}
	if !seenFrame {
		return nil, &StructuralError{Section: s.Name, Field: "frame", Reason: "is missing"}
	}
	return obj, nil
}

func parseFramePair(value string) (start, end int, err error) {
	head, tail, found := strings.Cut(value, ",")
	if !found {
		return 0, 0, fmt.Errorf("has value %q, want \"start,end\"", value)
	}
	start, err = strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, 0, fmt.Errorf("has non-integer start %q", head)
	}
	end, err = strconv.Atoi(strings.TrimSpace(tail))
	if err != nil {
		return 0, 0, fmt.Errorf("has non-integer end %q", tail)
	}
	if start > end {
		return 0, 0, fmt.Errorf("has inverted range %d,%d", start, end)
	}
	return start, end, nil
}

// attachObject places an object into its scene, creating an implicit
// scene when no [scene.N] header announced it. The implicit default
// scene 0 sorts to the front so serialization keeps it adjacent to the
// project block.
func attachObject(p *Project, obj *Object) {
	sc := p.SceneByID(obj.SceneID)
	if sc == nil {
		sc = &Scene{ID: obj.SceneID}
		if obj.SceneID == 0 {
			p.Scenes = append([]*Scene{sc}, p.Scenes...)
		} else {
			p.Scenes = append(p.Scenes, sc)
		}
	}
	sc.Objects = append(sc.Objects, obj)
}
