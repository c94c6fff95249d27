package glapp

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:   "none",
	KeyTab:    "tab",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	KeyF1:     "f1",
	KeyF2:     "f2",
	KeyF3:     "f3",
	KeyF4:     "f4",
	KeyF5:     "f5",
	KeyF6:     "f6",
	KeyF7:     "f7",
	KeyF8:     "f8",
	KeyF9:     "f9",
	KeyF10:    "f10",
	KeyF11:    "f11",
	KeyF12:    "f12",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}
