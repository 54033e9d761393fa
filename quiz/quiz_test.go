package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/session"
)

func newEngine(t *testing.T, targets ...string) *Engine {
	t.Helper()
	queue := []catalog.Word{}
	for _, target := range targets {
		queue = append(queue, catalog.Word{Prompt: "問", Target: target, Level: 1})
	}
	e, err := New(queue, "テスト")
	if err != nil {
		t.Fatal(err)
	}
	events := e.Start()
	if len(events) != 1 || events[0].Kind != QuestionLoaded {
		t.Fatalf("Start() = %v", events)
	}
	return e
}

// checkPrefix fails when the typed text is not a prefix of the target.
func checkPrefix(t *testing.T, e *Engine) {
	t.Helper()
	w, ok := e.Current()
	if !ok {
		return
	}
	if !strings.HasPrefix(w.Target, e.Typed()) {
		t.Fatalf("typed %q is not a prefix of %q", e.Typed(), w.Target)
	}
	if n := len(e.Typed()); n > 0 && n < len(w.Target) && w.Target[n] == ' ' {
		t.Fatalf("typed %q stops before a space in %q", e.Typed(), w.Target)
	}
}

func typeAll(t *testing.T, e *Engine, s string) []Event {
	t.Helper()
	var events []Event
	for _, r := range s {
		events = append(events, e.Submit(r)...)
		checkPrefix(t, e)
	}
	return events
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil, "x")
	if !errors.Is(err, session.ErrEmptySelection) {
		t.Errorf("New(nil) error = %v", err)
	}
}

func TestBloodPressure(t *testing.T) {
	e := newEngine(t, "blood pressure")
	typeAll(t, e, "blood")
	if e.Typed() != "blood " {
		t.Fatalf("typed = %q, want %q", e.Typed(), "blood ")
	}
	if e.Score() != 0 || e.IsAnswered() {
		t.Fatal("answered before the last letter")
	}
	events := typeAll(t, e, "pressure")
	if !Has(events, QuestionFinished) {
		t.Fatal("no QuestionFinished event")
	}
	if e.State() != Answered || !e.Success() {
		t.Errorf("state = %v success = %v", e.State(), e.Success())
	}
	if e.Score() != Reward || Reward != 10 {
		t.Errorf("score = %d, want 10", e.Score())
	}
	if e.Typed() != "blood pressure" {
		t.Errorf("typed = %q", e.Typed())
	}
}

func TestSpaceRuns(t *testing.T) {
	e := newEngine(t, "a  b   c")
	e.Submit('a')
	if e.Typed() != "a  " {
		t.Fatalf("typed = %q, want %q", e.Typed(), "a  ")
	}
	e.Submit('b')
	if e.Typed() != "a  b   " {
		t.Fatalf("typed = %q, want %q", e.Typed(), "a  b   ")
	}
	e.Submit('c')
	if !e.Success() {
		t.Error("not answered after the last letter")
	}
}

func TestWrongCharacter(t *testing.T) {
	e := newEngine(t, "heart")
	e.Submit('h')
	events := e.Submit('x')
	if len(events) != 1 || events[0].Kind != CharRejected {
		t.Fatalf("Submit(x) = %v, want one CharRejected", events)
	}
	if e.Typed() != "h" {
		t.Errorf("typed = %q after miss", e.Typed())
	}
	if e.Stats().Misses != 1 {
		t.Errorf("misses = %d", e.Stats().Misses)
	}
}

func TestCaseAndNonAlpha(t *testing.T) {
	e := newEngine(t, "ECG")
	for _, r := range []rune{'1', ' ', '-', 'é', '\n'} {
		if events := e.Submit(r); events != nil {
			t.Errorf("Submit(%q) = %v, want no-op", r, events)
		}
	}
	if e.Stats().Misses != 0 {
		t.Error("non alphabetic input counted as a miss")
	}
	typeAll(t, e, "eCg")
	if e.Typed() != "ECG" || !e.Success() {
		t.Errorf("typed = %q success = %v", e.Typed(), e.Success())
	}
}

func TestGiveUp(t *testing.T) {
	e := newEngine(t, "heart", "lung")
	events := e.GiveUp()
	if len(events) != 1 || events[0].Kind != QuestionFinished || events[0].Success {
		t.Fatalf("GiveUp() = %v", events)
	}
	if e.State() != Answered || e.Success() || e.Score() != 0 || e.Typed() != "" {
		t.Errorf("after give up: state %v success %v score %d typed %q", e.State(), e.Success(), e.Score(), e.Typed())
	}
	for _, r := range "heart" {
		if events := e.Submit(r); events != nil {
			t.Errorf("Submit(%q) after give up = %v", r, events)
		}
	}
	if e.Hint() != nil || e.GiveUp() != nil {
		t.Error("hint or give up accepted after answering")
	}
	if e.Typed() != "" || e.Score() != 0 {
		t.Error("state changed after answering")
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		target string
		typed  string
		want   string
		shown  bool
	}{
		{"fresh", "heart", "", "h", true},
		{"skips spaces", "a  bc", "", "a  ", true},
		{"resets typed", "heart", "hea", "h", true},
		{"resets past a space", "blood pressure", "bloodpr", "b", true},
		{"single letter", "x", "", "", false},
		{"would complete", "a b", "", "a ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.target)
			typeAll(t, e, tt.typed)
			events := e.Hint()
			if Has(events, HintShown) != tt.shown {
				t.Errorf("Hint() = %v, shown want %v", events, tt.shown)
			}
			if e.Typed() != tt.want {
				t.Errorf("typed = %q, want %q", e.Typed(), tt.want)
			}
			checkPrefix(t, e)
			if e.Score() != 0 || e.IsAnswered() {
				t.Error("hint scored or answered")
			}
		})
	}
}

func TestHintThenFinish(t *testing.T) {
	e := newEngine(t, "lung")
	e.Hint()
	typeAll(t, e, "ung")
	if !e.Success() || e.Score() != Reward {
		t.Errorf("success %v score %d", e.Success(), e.Score())
	}
	if e.Stats().Hints != 1 {
		t.Errorf("hints = %d", e.Stats().Hints)
	}
}

func TestSessionLifecycle(t *testing.T) {
	e := newEngine(t, "heart", "lung", "liver")
	if e.Next() != nil {
		t.Fatal("Next() accepted before answering")
	}

	typeAll(t, e, "heart")
	events := e.Next()
	if len(events) != 1 || events[0].Kind != QuestionLoaded || events[0].Index != 1 {
		t.Fatalf("Next() = %v", events)
	}
	if e.Typed() != "" || e.IsAnswered() {
		t.Error("question state not reset")
	}

	e.GiveUp()
	e.Next()
	typeAll(t, e, "liver")
	if _, ok := e.Summary(); ok {
		t.Fatal("summary before completion")
	}
	events = e.Next()
	if len(events) != 1 || events[0].Kind != SessionComplete {
		t.Fatalf("last Next() = %v", events)
	}
	if events[0].Score != 20 || events[0].Label != "テスト" {
		t.Errorf("SessionComplete = %+v", events[0])
	}
	s, ok := e.Summary()
	if !ok {
		t.Fatal("no summary")
	}
	want := Summary{Score: 20, Label: "テスト", Total: 3, Stats: Stats{Correct: 2, GaveUp: 1}}
	if s != want {
		t.Errorf("Summary() = %+v, want %+v", s, want)
	}
	if _, ok := e.Current(); ok {
		t.Error("Current() after completion")
	}
	if e.Submit('a') != nil || e.Hint() != nil || e.GiveUp() != nil || e.Next() != nil {
		t.Error("complete session accepted input")
	}
}

func TestScoreMonotonic(t *testing.T) {
	e := newEngine(t, "ab", "cd", "ef")
	last := 0
	for _, step := range []func() []Event{
		func() []Event { return e.Submit('a') },
		func() []Event { return e.Hint() },
		func() []Event { return e.Submit('x') },
		func() []Event { return e.Submit('b') },
		e.Next,
		e.GiveUp,
		e.Next,
		func() []Event { return e.Submit('e') },
		func() []Event { return e.Submit('f') },
		e.Next,
	} {
		step()
		if e.Score() < last {
			t.Fatalf("score went from %d to %d", last, e.Score())
		}
		last = e.Score()
	}
	if last != 20 {
		t.Errorf("final score = %d, want 20", last)
	}
}

func TestRestartResetsScore(t *testing.T) {
	e := newEngine(t, "ab")
	typeAll(t, e, "ab")
	e.Next()
	e.Start()
	if e.Score() != 0 || e.State() != AwaitingInput || e.Index() != 0 {
		t.Errorf("restart: score %d state %v index %d", e.Score(), e.State(), e.Index())
	}
}
