package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/okawa/aupshift/internal/aup"
)

func parseDoc(t *testing.T, text string) *aup.Document {
	t.Helper()
	doc, err := aup.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestBuild(t *testing.T) {
	doc := parseDoc(t, `[project]
ver=2.0
[scene.1]
name=sub
[0]
layer=0
frame=0,80
color=ffffff
[0.0]
_name=標準描画
[0.1]
text=abc
[1]
layer=2
frame=5,30
scene=1
focus=1
`)

	p, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if v, _ := p.Global.Get("ver"); v != "2.0" {
		t.Errorf("Expected global ver=2.0, got %q", v)
	}

	// Object 0 names no scene, so an implicit scene 0 is created and
	// placed before the explicit scene 1.
	if len(p.Scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(p.Scenes))
	}
	if p.Scenes[0].ID != 0 || p.Scenes[0].Explicit {
		t.Errorf("Scene 0 should be implicit and first: %+v", p.Scenes[0])
	}
	if p.Scenes[1].ID != 1 || !p.Scenes[1].Explicit {
		t.Errorf("Scene 1 should be explicit: %+v", p.Scenes[1])
	}

	obj0 := p.Scenes[0].Objects[0]
	if obj0.ID != 0 || obj0.Layer != 0 || obj0.FrameStart != 0 || obj0.FrameEnd != 80 {
		t.Errorf("Object 0 parsed wrong: %+v", obj0)
	}
	if len(obj0.Effects) != 2 || obj0.Effects[0].Index != 0 || obj0.Effects[1].Index != 1 {
		t.Errorf("Object 0 should own effects 0.0 and 0.1: %+v", obj0.Effects)
	}
	if !obj0.Extra.Has("color") {
		t.Errorf("Unrecognized fields must land in Extra: %+v", obj0.Extra)
	}
	if obj0.Extra.Has("layer") || obj0.Extra.Has("frame") {
		t.Errorf("Interpreted fields must not duplicate into Extra: %+v", obj0.Extra)
	}

	obj1 := p.Scenes[1].Objects[0]
	if obj1.SceneID != 1 || !obj1.Focus || obj1.Duration() != 25 {
		t.Errorf("Object 1 parsed wrong: %+v", obj1)
	}
}

func TestBuildStructuralErrors(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		field string
	}{
		{"missing layer", "[0]\nframe=0,10\n", "layer"},
		{"missing frame", "[0]\nlayer=0\n", "frame"},
		{"bad frame pair", "[0]\nlayer=0\nframe=10\n", "frame"},
		{"inverted frame range", "[0]\nlayer=0\nframe=20,10\n", "frame"},
		{"negative layer", "[0]\nlayer=-1\nframe=0,10\n", "layer"},
		{"orphan effect", "[0.0]\n_name=x\n", "owner"},
		{"duplicate object", "[0]\nlayer=0\nframe=0,10\n[0]\nlayer=0\nframe=0,10\n", "id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(parseDoc(t, tc.text))
			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Fatalf("Expected StructuralError, got %v", err)
			}
			if serr.Field != tc.field {
				t.Errorf("Expected error on field %q, got %q (%v)", tc.field, serr.Field, serr)
			}
		})
	}
}

func TestClone(t *testing.T) {
	doc := parseDoc(t, "[0]\nlayer=1\nframe=0,10\ncolor=ff0000\n[0.0]\ntext=a\n")
	p, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := p.Clone()
	c.Scenes[0].Objects[0].Layer = 9
	c.Scenes[0].Objects[0].Extra.Set("color", "000000")
	c.Scenes[0].Objects[0].Effects[0].Fields.Set("text", "b")

	orig := p.Scenes[0].Objects[0]
	if orig.Layer != 1 {
		t.Errorf("Clone mutated original layer: %d", orig.Layer)
	}
	if v, _ := orig.Extra.Get("color"); v != "ff0000" {
		t.Errorf("Clone mutated original extra field: %q", v)
	}
	if v, _ := orig.Effects[0].Fields.Get("text"); v != "a" {
		t.Errorf("Clone mutated original effect field: %q", v)
	}
}

func TestOverlaps(t *testing.T) {
	a := &Object{FrameStart: 0, FrameEnd: 80}
	b := &Object{FrameStart: 80, FrameEnd: 120}
	c := &Object{FrameStart: 81, FrameEnd: 120}

	if !a.Overlaps(b) {
		t.Error("Inclusive ranges sharing frame 80 must overlap")
	}
	if a.Overlaps(c) {
		t.Error("Adjacent ranges 0..80 and 81..120 must not overlap")
	}
}
