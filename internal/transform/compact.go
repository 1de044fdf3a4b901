package transform

import (
	"sort"

	"github.com/okawa/aupshift/internal/model"
)

// Compact repacks frame ranges so that, within every (scene, layer)
// group inside the filter, objects form one contiguous run with no
// gaps and no overlaps. Objects are ordered by original frame start,
// ties broken by ascending object id; the first object keeps the
// group's minimum original frame start, each later object starts at
// the previous new end plus one, and every object keeps its exact
// original duration. Returns the number of objects whose range moved.
//
// Grouping already happens per scene, so layer numbering in one scene
// never pushes objects in another. Compact runs only when a frame
// adjustment was requested; without it, pre-existing overlaps in the
// source are left as they are.
func Compact(p *model.Project, scene *int) int {
	moved := 0
	for _, sc := range p.Scenes {
		if scene != nil && sc.ID != *scene {
			continue
		}
		moved += compactScene(sc)
	}
	return moved
}

// Isolate runs the same compaction scoped strictly per scene, so frame
// numbers in different scenes never interact: two objects in different
// scenes may occupy identical ranges afterwards. Each scene re-bases
// its groups to their own minimum original frame start.
func Isolate(p *model.Project) int {
	moved := 0
	for _, sc := range p.Scenes {
		id := sc.ID
		moved += Compact(p, &id)
	}
	return moved
}

func compactScene(sc *model.Scene) int {
	byLayer := make(map[int][]*model.Object)
	for _, o := range sc.Objects {
		byLayer[o.Layer] = append(byLayer[o.Layer], o)
	}

	moved := 0
	for _, group := range byLayer {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].FrameStart != group[j].FrameStart {
				return group[i].FrameStart < group[j].FrameStart
			}
			return group[i].ID < group[j].ID
		})

		cursor := group[0].FrameStart
		for _, o := range group {
			d := o.Duration()
			if o.FrameStart != cursor {
				moved++
			}
			o.FrameStart = cursor
			o.FrameEnd = cursor + d
			cursor = o.FrameEnd + 1
		}
	}
	return moved
}
