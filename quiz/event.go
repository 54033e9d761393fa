package quiz

type EventKind int

const (
	QuestionLoaded EventKind = iota
	CharAccepted
	// CharRejected asks the screen to shake the answer box.
	CharRejected
	HintShown
	QuestionFinished
	SessionComplete
)

func (k EventKind) String() string {
	return [...]string{
		"QuestionLoaded",
		"CharAccepted",
		"CharRejected",
		"HintShown",
		"QuestionFinished",
		"SessionComplete",
	}[k]
}

// Event tells the screen what a transition did. Score is the score after it.
type Event struct {
	Kind    EventKind
	Index   int
	Char    rune
	Success bool
	Score   int
	Label   string
}

// Has reports whether events contains one of kind.
func Has(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
