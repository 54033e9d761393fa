package quiz

type CellKind int

const (
	Untouched CellKind = iota
	Space
	Typed
	// Revealed marks letters shown after giving up, not earned by typing.
	Revealed
	Cursor
)

type Cell struct {
	Kind CellKind
	Char rune
}

// Classify projects a target onto the answer box given how much of it has
// been typed and whether the question is answered.
func Classify(target string, typedLen int, answered bool) []Cell {
	cells := []Cell{}
	for i, r := range []rune(target) {
		c := Cell{Char: r}
		switch {
		case r == ' ':
			c.Kind = Space
		case i < typedLen:
			c.Kind = Typed
		case answered:
			c.Kind = Revealed
		case i == typedLen:
			c.Kind = Cursor
		default:
			c.Kind = Untouched
		}
		cells = append(cells, c)
	}
	return cells
}

// Cells is the answer box of the current question.
func (e *Engine) Cells() []Cell {
	w, ok := e.Current()
	if !ok {
		return nil
	}
	return Classify(w.Target, len(e.typed), e.IsAnswered())
}
