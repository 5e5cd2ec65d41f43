package wizard

// Key is a logical key press forwarded by the terminal layer
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyPgUp
	KeyPgDown
	KeyRune // printable character in Input.Rune
)

// Input is one key event. Printable characters arrive as KeyRune so that
// each stage decides whether 'q' means quit or is text being typed.
type Input struct {
	Key  Key
	Rune rune
}

// Press builds an Input for a non-character key
func Press(k Key) Input { return Input{Key: k} }

// Char builds an Input for a printable character
func Char(r rune) Input { return Input{Key: KeyRune, Rune: r} }

// Transition is the outcome of handling one Input
type Transition int

const (
	Stay Transition = iota
	Next
	Previous
	Quit
)

func (t Transition) String() string {
	switch t {
	case Stay:
		return "stay"
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// is reports whether in is key k or the character r
func (in Input) is(k Key, r rune) bool {
	return in.Key == k || (in.Key == KeyRune && in.Rune == r)
}

func (in Input) isChar(r rune) bool {
	return in.Key == KeyRune && in.Rune == r
}
