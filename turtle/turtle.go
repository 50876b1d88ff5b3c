/*
File    : logo2/turtle/turtle.go
*/

// Package turtle implements the 2D turtle: a pose (position, heading)
// with pen state whose motion emits drawing commands. The turtle has no
// drawing dependency itself; commands accumulate in an ordered buffer
// and are forwarded synchronously to an optional notify sink, which is
// where a renderer plugs in.
package turtle

import "math"

// State is the turtle pose. Heading is unbounded; the angle-mode
// conversion is applied at use.
type State struct {
	X, Y    float64
	Heading float64
}

// CommandType discriminates the turtle command union.
type CommandType int

const (
	// DrawLine draws a segment between two points
	DrawLine CommandType = iota
	// SetColor switches the pen color (RGBA channels packed into a
	// uint32 as 0xAARRGGBB)
	SetColor
	// SetWidth switches the pen width
	SetWidth
)

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Command is one drawing command. From/To are set for DrawLine, Color
// for SetColor, Width for SetWidth.
type Command struct {
	Type  CommandType
	From  Point
	To    Point
	Color uint32
	Width float32
}

// CommandNotify receives every emitted command synchronously, in
// program order, for incremental rendering.
type CommandNotify interface {
	AddCommand(t *Turtle, cmd Command)
}

// Turtle holds the pose, the pen state, the step scale and the angle
// mode, plus the command buffer and the optional live sink.
type Turtle struct {
	state   State
	penup   bool
	step    float64
	radians bool
	color   uint32
	width   float32

	commands []Command
	notify   CommandNotify
}

// New creates a turtle at the origin, heading 0, pen down, step 1,
// degree mode.
func New() *Turtle {
	return &Turtle{step: 1, color: 0xff000000, width: 1}
}

// SetNotify installs (or clears, with nil) the live command sink.
func (t *Turtle) SetNotify(notify CommandNotify) {
	t.notify = notify
}

// Forward moves the turtle along its heading by amount, scaled by the
// step. With the pen down the motion emits a DrawLine command.
func (t *Turtle) Forward(amount float64) {
	from := t.Save()
	rad := t.toRad(t.state.Heading)
	t.state.X += math.Cos(rad) * amount * t.step
	t.state.Y += math.Sin(rad) * amount * t.step
	if !t.penup {
		t.emit(Command{
			Type: DrawLine,
			From: Point{X: from.X, Y: from.Y},
			To:   Point{X: t.state.X, Y: t.state.Y},
		})
	}
}

// Back moves the turtle backwards; equivalent to Forward(-amount).
func (t *Turtle) Back(amount float64) {
	t.Forward(-amount)
}

// Rotate turns the turtle by the given angle in the current angle mode.
// Heading is left unbounded.
func (t *Turtle) Rotate(angle float64) {
	t.state.Heading += angle
}

// Penup lifts the pen; subsequent motion emits nothing.
func (t *Turtle) Penup() {
	t.penup = true
}

// Pendown lowers the pen.
func (t *Turtle) Pendown() {
	t.penup = false
}

// IsPenup reports the pen state.
func (t *Turtle) IsPenup() bool {
	return t.penup
}

// SetStep changes the motion scale. The step stays strictly positive;
// non-positive sizes are ignored.
func (t *Turtle) SetStep(size float64) {
	if size > 0 {
		t.step = size
	}
}

// GetStep returns the motion scale.
func (t *Turtle) GetStep() float64 {
	return t.step
}

// SetRadians switches between radian and degree mode.
func (t *Turtle) SetRadians(radians bool) {
	t.radians = radians
}

// IsRadians reports the angle mode.
func (t *Turtle) IsRadians() bool {
	return t.radians
}

// SetPenColor changes the pen color and emits a SetColor command.
func (t *Turtle) SetPenColor(r, g, b, a uint8) {
	t.color = uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	t.emit(Command{Type: SetColor, Color: t.color})
}

// PenColor returns the current color, packed as 0xAARRGGBB.
func (t *Turtle) PenColor() uint32 {
	return t.color
}

// SetPenWidth changes the pen width and emits a SetWidth command.
func (t *Turtle) SetPenWidth(width float32) {
	t.width = width
	t.emit(Command{Type: SetWidth, Width: width})
}

// PenWidth returns the current pen width.
func (t *Turtle) PenWidth() float32 {
	return t.width
}

// Save captures the current pose.
func (t *Turtle) Save() State {
	return t.state
}

// Restore replaces the pose with a previously saved one.
func (t *Turtle) Restore(state State) {
	t.state = state
}

// Commands returns the ordered command buffer.
func (t *Turtle) Commands() []Command {
	return t.commands
}

// emit appends a command and forwards it to the sink when one is set.
func (t *Turtle) emit(cmd Command) {
	t.commands = append(t.commands, cmd)
	if t.notify != nil {
		t.notify.AddCommand(t, cmd)
	}
}

// toRad converts an angle from the current mode to radians.
func (t *Turtle) toRad(angle float64) float64 {
	if t.radians {
		return angle
	}
	return angle * math.Pi / 180
}
