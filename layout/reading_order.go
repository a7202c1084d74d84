package layout

import (
	"math"
	"sort"

	"github.com/courtlist/causelist/model"
)

// SortBlocks returns the page's blocks in reading order: top to bottom, then
// left to right. Coordinates are rounded to a tenth of a point first so
// sub-pixel jitter between blocks on the same visual row cannot flip their
// order. The input slice is not modified.
func SortBlocks(blocks []model.TextBlock) []model.TextBlock {
	sorted := make([]model.TextBlock, len(blocks))
	copy(sorted, blocks)

	sort.SliceStable(sorted, func(i, j int) bool {
		yi := roundTenth(sorted[i].BBox.Top())
		yj := roundTenth(sorted[j].BBox.Top())
		if yi != yj {
			return yi < yj
		}
		return roundTenth(sorted[i].BBox.Left()) < roundTenth(sorted[j].BBox.Left())
	})

	return sorted
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
