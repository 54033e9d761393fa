// Package quiz runs one shuffled queue of words through the typing quiz.
//
// Each question starts AwaitingInput with nothing typed. Letters are matched
// one at a time against the target spelling; a correct letter is kept, a
// wrong one only produces a CharRejected event. Spaces in the target are
// never typed: they are filled in as soon as the letter before them is
// accepted. Completing the target answers the question and scores Reward
// points, giving up answers it without points. Next moves to the following
// question, or completes the session after the last one.
//
// The engine is not safe for concurrent use; it has a single owner, the
// screen that feeds it key presses.
package quiz

import (
	"log"

	"github.com/google/uuid"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/session"
)

const Reward = 10

type State int

const (
	AwaitingInput State = iota
	Answered
	Complete
)

func (s State) String() string {
	return [...]string{"AwaitingInput", "Answered", "Complete"}[s]
}

// Stats counts what happened during a session.
type Stats struct {
	Correct int
	GaveUp  int
	Hints   int
	Misses  int
}

type Summary struct {
	Score int
	Label string
	Total int
	Stats Stats
}

type Engine struct {
	id      string
	queue   []catalog.Word
	label   string
	index   int
	typed   []rune
	target  []rune
	state   State
	success bool
	score   int
	stats   Stats
}

func New(queue []catalog.Word, label string) (*Engine, error) {
	if len(queue) == 0 {
		return nil, session.ErrEmptySelection
	}
	return &Engine{
		id:    uuid.New().String(),
		queue: queue,
		label: label,
	}, nil
}

// Start begins the session at the first question with a zero score.
func (e *Engine) Start() []Event {
	e.index = 0
	e.score = 0
	e.stats = Stats{}
	log.Printf("quiz %s: start %s with %d words", e.id, e.label, len(e.queue))
	return e.load()
}

func (e *Engine) load() []Event {
	if e.index >= len(e.queue) {
		e.state = Complete
		e.typed = nil
		e.target = nil
		log.Printf("quiz %s: complete, score %d %+v", e.id, e.score, e.stats)
		return []Event{{Kind: SessionComplete, Index: e.index, Score: e.score, Label: e.label}}
	}
	e.state = AwaitingInput
	e.success = false
	e.typed = e.typed[:0]
	e.target = []rune(e.queue[e.index].Target)
	return []Event{{Kind: QuestionLoaded, Index: e.index, Score: e.score}}
}

// Submit matches one typed character against the next unfilled position.
func (e *Engine) Submit(r rune) []Event {
	if e.state != AwaitingInput {
		return nil
	}
	r = toLower(r)
	if r < 'a' || r > 'z' {
		return nil
	}
	pos := len(e.typed)
	if pos >= len(e.target) {
		return nil
	}
	if toLower(e.target[pos]) != r {
		e.stats.Misses++
		return []Event{{Kind: CharRejected, Index: e.index, Char: r, Score: e.score}}
	}

	e.typed = append(e.typed, e.target[pos])
	e.skipSpaces()
	events := []Event{{Kind: CharAccepted, Index: e.index, Char: r, Score: e.score}}
	if len(e.typed) == len(e.target) {
		events = append(events, e.finish(true))
	}
	return events
}

// Hint resets the typed prefix to the first character of the target and any
// spaces after it. It never completes the answer and never scores.
func (e *Engine) Hint() []Event {
	if e.state != AwaitingInput || len(e.target) == 0 {
		return nil
	}
	hint := []rune{e.target[0]}
	for len(hint) < len(e.target) && e.target[len(hint)] == ' ' {
		hint = append(hint, ' ')
	}
	if len(hint) >= len(e.target) {
		return nil
	}
	e.typed = append(e.typed[:0], hint...)
	e.stats.Hints++
	return []Event{{Kind: HintShown, Index: e.index, Char: hint[0], Score: e.score}}
}

// GiveUp answers the question unsuccessfully, leaving the rest of the
// target to be shown as revealed.
func (e *Engine) GiveUp() []Event {
	if e.state != AwaitingInput {
		return nil
	}
	return []Event{e.finish(false)}
}

// Next advances past an answered question.
func (e *Engine) Next() []Event {
	if e.state != Answered {
		return nil
	}
	e.index++
	return e.load()
}

func (e *Engine) finish(success bool) Event {
	e.state = Answered
	e.success = success
	if success {
		e.score += Reward
		e.stats.Correct++
	} else {
		e.stats.GaveUp++
	}
	return Event{Kind: QuestionFinished, Index: e.index, Success: success, Score: e.score}
}

func (e *Engine) skipSpaces() {
	for len(e.typed) < len(e.target) && e.target[len(e.typed)] == ' ' {
		e.typed = append(e.typed, ' ')
	}
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Score() int {
	return e.score
}

// Index is the zero based position of the current question.
func (e *Engine) Index() int {
	return e.index
}

func (e *Engine) Total() int {
	return len(e.queue)
}

func (e *Engine) Label() string {
	return e.label
}

// Typed is the confirmed prefix of the current target.
func (e *Engine) Typed() string {
	return string(e.typed)
}

func (e *Engine) IsAnswered() bool {
	return e.state != AwaitingInput
}

func (e *Engine) Success() bool {
	return e.state == Answered && e.success
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// Current returns the word being asked, false once the session is complete.
func (e *Engine) Current() (catalog.Word, bool) {
	if e.state == Complete || e.index >= len(e.queue) {
		return catalog.Word{}, false
	}
	return e.queue[e.index], true
}

// Summary is available once the session is complete.
func (e *Engine) Summary() (Summary, bool) {
	if e.state != Complete {
		return Summary{}, false
	}
	return Summary{Score: e.score, Label: e.label, Total: len(e.queue), Stats: e.stats}, true
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
