package imageresize

import (
	"math"

	"github.com/dgallion1/qaboard/internal/doc"
)

// Size bounds in device-independent pixels, and the handle's edge length.
const (
	MinSize    = 50
	MaxSize    = 1200
	HandleSize = 16
)

// Rect is a client-space bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size is a committed image size.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Clamp bounds v to [MinSize, MaxSize].
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinSize
	}
	return math.Max(MinSize, math.Min(MaxSize, v))
}

// Document is the slice of the editor's model a commit needs.
type Document interface {
	NodeAt(pos int) *doc.Node
	SetNodeMarkup(pos int, attrs map[string]any) error
}

// Apply rounds and clamps width and height, then rewrites the size of the
// image at pos in one mutation, keeping every other attribute. It reports
// false without mutating when pos no longer holds an image.
func Apply(d Document, pos int, width, height float64) (Size, bool) {
	node := d.NodeAt(pos)
	if node == nil || node.Type != doc.KindImage {
		return Size{}, false
	}
	size := Size{
		Width:  int(Clamp(math.Round(width))),
		Height: int(Clamp(math.Round(height))),
	}
	attrs := make(map[string]any, len(node.Attrs)+2)
	for k, v := range node.Attrs {
		attrs[k] = v
	}
	attrs["width"] = size.Width
	attrs["height"] = size.Height
	if err := d.SetNodeMarkup(pos, attrs); err != nil {
		return Size{}, false
	}
	return size, true
}
