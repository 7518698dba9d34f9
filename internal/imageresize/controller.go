// Package imageresize implements drag-to-resize for images in an editing
// surface. One Controller serves one surface for the surface's lifetime.
package imageresize

import (
	"errors"
	"log/slog"
	"math"

	"github.com/dgallion1/qaboard/internal/doc"
)

// PointerEvent is a pointer position in client coordinates.
type PointerEvent struct {
	X, Y float64
	// KeepAspect is set while the constrain modifier (shift) is held.
	KeepAspect bool
}

// Element is the rendered image for a node.
type Element interface {
	Rect() Rect
	// SetPreviewSize changes the displayed size only; the document is untouched.
	SetPreviewSize(width, height float64)
}

// Surface is the editing surface the controller is attached to.
type Surface interface {
	Document
	// SelectedNode reports the selected node when the selection is a
	// single-node selection.
	SelectedNode() (pos int, node *doc.Node, ok bool)
	// ElementAt returns the live element rendered for the node at pos.
	ElementAt(pos int) Element
}

// Container is the scrollable box the handle is positioned in.
type Container interface {
	Rect() Rect
	Scroll() (left, top float64)
}

// Handle is the draggable resize control.
type Handle interface {
	Show()
	Hide()
	MoveTo(left, top float64)
	OnPointerDown(fn func(PointerEvent)) (remove func())
	Remove()
}

// Pointer delivers window-wide pointer moves and releases.
type Pointer interface {
	Capture(onMove, onUp func(PointerEvent)) (release func())
}

// State is the controller's interaction state.
type State int

const (
	Idle State = iota
	Selected
	Dragging
)

func (s State) String() string {
	switch s {
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Config wires a controller to its surface.
type Config struct {
	Surface   Surface
	Container Container
	Handle    Handle
	Pointer   Pointer
	Logger    *slog.Logger
}

type activeImage struct {
	pos  int
	node *doc.Node
	el   Element
}

type dragSession struct {
	startX, startY float64
	startW, startH float64
	aspect         float64
	release        func()
}

// Controller tracks the selected image and turns handle drags into a single
// size commit per gesture. It is not safe for concurrent use; all calls come
// from the surface's event loop.
type Controller struct {
	surface   Surface
	container Container
	handle    Handle
	pointer   Pointer
	log       *slog.Logger

	active *activeImage
	drag   *dragSession
	// preview is the uncommitted size shown while dragging.
	preview *Size

	removeDown func()
	destroyed  bool
}

// New attaches a controller to a surface. The handle starts hidden.
func New(cfg Config) (*Controller, error) {
	if cfg.Surface == nil || cfg.Container == nil || cfg.Handle == nil || cfg.Pointer == nil {
		return nil, errors.New("imageresize: surface, container, handle and pointer are required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		surface:   cfg.Surface,
		container: cfg.Container,
		handle:    cfg.Handle,
		pointer:   cfg.Pointer,
		log:       log,
	}
	c.handle.Hide()
	c.removeDown = c.handle.OnPointerDown(c.PointerDown)
	return c, nil
}

// State reports the current interaction state.
func (c *Controller) State() State {
	switch {
	case c.drag != nil:
		return Dragging
	case c.active != nil:
		return Selected
	default:
		return Idle
	}
}

// Active returns the position of the selected image.
func (c *Controller) Active() (int, bool) {
	if c.active == nil {
		return 0, false
	}
	return c.active.pos, true
}

// Preview returns the uncommitted drag size, if a drag has moved.
func (c *Controller) Preview() (Size, bool) {
	if c.preview == nil {
		return Size{}, false
	}
	return *c.preview, true
}

// Update must be called after every surface state change.
func (c *Controller) Update() {
	if c.destroyed {
		return
	}
	next := c.selectedImage()
	if next == nil {
		if c.active != nil {
			c.abandonDrag()
			c.active = nil
			c.handle.Hide()
		}
		return
	}

	if c.active == nil || c.active.pos != next.pos {
		c.abandonDrag()
		c.active = next
		c.handle.Show()
	} else if c.drag == nil {
		// Same image; the surface may have re-rendered it.
		c.active.node = next.node
		c.active.el = next.el
	}
	c.positionHandle()
}

// PointerDown starts a drag. The handle calls it; a press with no selected
// image or during a drag is ignored.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.destroyed || c.active == nil || c.drag != nil {
		return
	}
	r := c.active.el.Rect()
	d := &dragSession{
		startX: ev.X,
		startY: ev.Y,
		startW: r.Width(),
		startH: r.Height(),
	}
	d.aspect = d.startW / math.Max(d.startH, 1)
	c.drag = d
	c.preview = nil
	d.release = c.pointer.Capture(c.pointerMove, c.pointerUp)
}

func (c *Controller) pointerMove(ev PointerEvent) {
	if c.drag == nil || c.active == nil {
		return
	}
	d := c.drag
	w := Clamp(d.startW + ev.X - d.startX)
	h := Clamp(d.startH + ev.Y - d.startY)
	if ev.KeepAspect {
		h = Clamp(w / d.aspect)
	}
	c.preview = &Size{Width: int(math.Round(w)), Height: int(math.Round(h))}
	c.active.el.SetPreviewSize(float64(c.preview.Width), float64(c.preview.Height))
	c.positionHandle()
}

func (c *Controller) pointerUp(PointerEvent) {
	if c.drag == nil || c.active == nil {
		return
	}
	d := c.drag
	c.drag = nil
	if d.release != nil {
		d.release()
	}

	w, h := d.startW, d.startH
	if c.preview != nil {
		w, h = float64(c.preview.Width), float64(c.preview.Height)
	}
	c.preview = nil

	size, ok := Apply(c.surface, c.active.pos, w, h)
	if !ok {
		c.log.Debug("image resize commit skipped", "pos", c.active.pos)
		return
	}
	c.log.Debug("image resized", "pos", c.active.pos, "width", size.Width, "height", size.Height)
}

// Destroy detaches the controller. An in-flight drag is dropped uncommitted.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.abandonDrag()
	if c.removeDown != nil {
		c.removeDown()
		c.removeDown = nil
	}
	c.handle.Remove()
	c.active = nil
	c.destroyed = true
}

func (c *Controller) abandonDrag() {
	if c.drag == nil {
		return
	}
	if c.drag.release != nil {
		c.drag.release()
	}
	c.drag = nil
	c.preview = nil
	c.log.Debug("image resize drag abandoned")
}

func (c *Controller) selectedImage() *activeImage {
	pos, node, ok := c.surface.SelectedNode()
	if !ok || node == nil || node.Type != doc.KindImage {
		return nil
	}
	el := c.surface.ElementAt(pos)
	if el == nil {
		return nil
	}
	return &activeImage{pos: pos, node: node, el: el}
}

func (c *Controller) positionHandle() {
	if c.active == nil {
		return
	}
	img := c.active.el.Rect()
	if c.preview != nil {
		img.Right = img.Left + float64(c.preview.Width)
		img.Bottom = img.Top + float64(c.preview.Height)
	}
	box := c.container.Rect()
	scrollLeft, scrollTop := c.container.Scroll()
	c.handle.MoveTo(
		img.Right-box.Left+scrollLeft-HandleSize/2,
		img.Bottom-box.Top+scrollTop-HandleSize/2,
	)
}
