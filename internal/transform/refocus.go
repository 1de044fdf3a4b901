package transform

import "github.com/okawa/aupshift/internal/model"

// Refocus clears the focus anchor from every object and grants it to
// the highest-numbered object of the last non-empty scene. The editor
// expects exactly one anchored object after a repack; the pipeline
// calls this only when a frame adjustment actually ran.
func Refocus(p *model.Project) {
	var lastScene *model.Scene
	for _, sc := range p.Scenes {
		for _, o := range sc.Objects {
			o.Focus = false
		}
		if len(sc.Objects) > 0 {
			lastScene = sc
		}
	}
	if lastScene == nil {
		return
	}

	anchor := lastScene.Objects[0]
	for _, o := range lastScene.Objects[1:] {
		if o.ID > anchor.ID {
			anchor = o
		}
	}
	anchor.Focus = true
}
