package transform

import "github.com/okawa/aupshift/internal/model"

// Reassign moves every object matching the scene filter to the target
// layer and returns the number of objects relabeled. A nil filter
// selects all scenes. Frame ranges, object ids, scene ids and effects
// are never touched; objects outside the filter keep their layer. An
// empty selection is a valid no-op, and running twice with the same
// arguments equals running once.
func Reassign(p *model.Project, target int, scene *int) int {
	n := 0
	for _, sc := range p.Scenes {
		if scene != nil && sc.ID != *scene {
			continue
		}
		for _, o := range sc.Objects {
			o.Layer = target
			n++
		}
	}
	return n
}
