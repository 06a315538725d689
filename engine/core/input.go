package core

// Input tracks key state and the cursor from the event stream.
type Input struct {
	keys           map[Key]bool
	pressed        map[Key]bool
	mouseX, mouseY float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, pressed: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.pressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// WasPressed reports a down edge for k since the last call, consuming it.
func (in *Input) WasPressed(k Key) bool {
	p := in.pressed[k]
	delete(in.pressed, k)
	return p
}

// TakeScroll returns accumulated vertical scroll and resets it.
func (in *Input) TakeScroll() float64 {
	s := in.scrollY
	in.scrollY = 0
	return s
}
