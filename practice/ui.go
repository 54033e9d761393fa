package practice

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/learn"
	"github.com/yusan117/medtyping/quiz"
	"github.com/yusan117/medtyping/session"
	"github.com/yusan117/medtyping/ui"
)

type screen int

const (
	screenMenu screen = iota
	screenQuiz
	screenResult
	screenLearn
)

// shakeDoneMsg ends the shake started by the rejected key with the same id.
type shakeDoneMsg struct {
	id int
}

type Registry interface {
	IsChecked(id string) bool
	Toggle(id string) bool
}

type PracModel struct {
	catalog  catalog.Catalog
	registry Registry
	builder  session.Builder
	engine   *quiz.Engine
	learn    *learn.Model
	menu     menu
	screen   screen
	message  string
	shake    bool
	shakeID  int
	shakeFor time.Duration

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	helpmode ui.HelpModel
}

func initialModel(c catalog.Catalog, registry Registry, rnd session.Rand, opts Options, shakeFor time.Duration) *PracModel {
	m := &PracModel{
		catalog:  c,
		registry: registry,
		builder:  session.Builder{Catalog: c, Checker: registry, Rand: rnd},
		menu:     newMenu(c, opts),
		shakeFor: shakeFor,
	}
	m.helpmode = ui.HelpModel{
		Keyhelp: [][]string{
			{"a-z", "type the answer"},
			{"tab/ctrl+h", "hint"},
			{"ctrl+g", "give up"},
			{"enter", "next question / start"},
			{"ctrl+x", "check / uncheck word"},
			{"esc", "back to menu"},
			{"↑/↓", "choose category"},
			{"l n c", "level, count, checked only"},
			{"v", "learning mode"},
			{"?", "back"},
		},
	}
	return m
}

func (m *PracModel) Init() tea.Cmd {
	return nil
}

// start builds a queue from opts and begins the quiz. A failed build
// stays on the menu with the error as its message.
func (m *PracModel) start(opts session.Options) error {
	queue, err := m.builder.Build(opts)
	if err == nil {
		m.engine, err = quiz.New(queue, session.Label(opts))
	}
	if err != nil {
		if !errors.Is(err, session.ErrEmptySelection) {
			log.Printf("practice: build %+v: %s", opts, err)
		}
		m.engine = nil
		m.menu.message = err.Error()
		m.screen = screenMenu
		return err
	}
	m.menu.message = ""
	m.screen = screenQuiz
	m.apply(m.engine.Start())
	return nil
}

// apply reacts to engine events.
func (m *PracModel) apply(events []quiz.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range events {
		switch e.Kind {
		case quiz.QuestionLoaded:
			m.message = ""
			m.shake = false
		case quiz.CharAccepted, quiz.HintShown:
			m.shake = false
		case quiz.CharRejected:
			m.shake = true
			m.shakeID++
			id := m.shakeID
			cmd = tea.Tick(m.shakeFor, func(time.Time) tea.Msg {
				return shakeDoneMsg{id: id}
			})
		case quiz.QuestionFinished:
			m.shake = false
			if e.Success {
				m.message = "Excellent!"
			}
		case quiz.SessionComplete:
			m.screen = screenResult
		}
	}
	return cmd
}

func (m *PracModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenLearn {
			_, cmd = m.learn.Update(msg)
			if m.learn.Closed {
				m.screen = screenMenu
			}
			break
		}
		if msg.Type == tea.KeyRunes && string(msg.Runes) == "?" {
			cmd = func() tea.Msg { return ui.HelpMsg{} }
			break
		}
		switch m.screen {
		case screenMenu:
			cmd = m.menuKey(msg)
		case screenQuiz:
			cmd = m.quizKey(msg)
		case screenResult:
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.engine = nil
				m.screen = screenMenu
			case tea.KeyRunes:
				if string(msg.Runes) == "q" {
					return m, tea.Quit
				}
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - 2 // infobar and footer
		if !m.ready {
			m.viewport = viewport.Model{Width: msg.Width, Height: viewportHeight}
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		if m.learn != nil {
			m.learn.Update(msg)
		}
	case ui.HelpMsg:
		if m.screen == screenLearn {
			m.learn.Update(msg)
			break
		}
		m.helpmode.Active = !m.helpmode.Active
	case shakeDoneMsg:
		if msg.id == m.shakeID {
			m.shake = false
		}
	}

	return m, cmd
}

func (m *PracModel) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyUp:
		m.menu.move(-1)
	case tea.KeyDown:
		m.menu.move(1)
	case tea.KeyEnter:
		m.start(m.menu.options())
	case tea.KeyEsc:
		return tea.Quit
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.menu.move(-1)
		case "j":
			m.menu.move(1)
		case "l":
			m.menu.nextLevel()
		case "n":
			m.menu.nextCount()
		case "c":
			m.menu.checked = !m.menu.checked
		case "v":
			m.openLearn()
		case "q":
			return tea.Quit
		}
	}
	return nil
}

func (m *PracModel) openLearn() {
	m.learn = learn.New(m.catalog, m.registry)
	if m.ready {
		m.learn.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	m.screen = screenLearn
}

func (m *PracModel) quizKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes:
		var cmd tea.Cmd
		for _, r := range msg.Runes {
			if c := m.apply(m.engine.Submit(r)); c != nil {
				cmd = c
			}
		}
		return cmd
	case tea.KeyTab, tea.KeyCtrlH:
		return m.apply(m.engine.Hint())
	case tea.KeyCtrlG:
		return m.apply(m.engine.GiveUp())
	case tea.KeyEnter:
		return m.apply(m.engine.Next())
	case tea.KeyCtrlX:
		if w, ok := m.engine.Current(); ok {
			m.registry.Toggle(w.ID())
		}
	case tea.KeyEsc:
		log.Printf("practice: quiz %s abandoned at %d/%d", m.engine.ID(), m.engine.Index()+1, m.engine.Total())
		m.engine = nil
		m.screen = screenMenu
	}
	return nil
}

func (m *PracModel) View() string {
	if !m.ready {
		return "\n  Initalizing..."
	}
	if m.screen == screenLearn {
		return m.learn.View()
	}
	if m.width < 60 {
		return fmt.Sprintf("Terminal window too narrow to render content\nResize to fix (%d/60)", m.width)
	}

	var content string
	switch {
	case m.helpmode.Active:
		content = m.helpmode.View()
	case m.screen == screenQuiz:
		content = m.quizView()
	case m.screen == screenResult:
		content = m.resultView()
	default:
		content = m.menu.View(m.width)
	}
	m.viewport.SetContent(wordwrap.String(content, m.viewport.Width))

	return strings.Join(
		[]string{
			m.viewport.View(), "\n",
			m.infobar(), "\n",
			ui.Footer(m.viewport.Width),
		},
		"",
	)
}

func (m *PracModel) quizView() string {
	w, ok := m.engine.Current()
	if !ok {
		return ""
	}
	message := ""
	if m.message != "" {
		message = ui.StyleMessage(m.message)
	}
	actions := ui.StyleHelp("tab:hint  ctrl+g:give up")
	if m.engine.IsAnswered() {
		actions = ui.StyleHelp("enter:next")
	}
	return strings.Join(
		[]string{
			"", "",
			"    " + ui.StyleLevel("Lv."+strconv.Itoa(w.Level)) + "  " + ui.Checkbox(m.registry.IsChecked(w.ID())),
			"",
			"    " + ui.StylePrompt(w.Prompt),
			"", "",
			"    " + ui.AnswerBox(m.engine.Cells(), m.shake),
			"", "",
			"    " + message,
			"",
			"    " + actions,
		},
		"\n",
	)
}

func (m *PracModel) resultView() string {
	s, ok := m.engine.Summary()
	if !ok {
		return ""
	}
	return strings.Join(
		[]string{
			"", "",
			"    " + ui.StyleCategory(s.Label),
			"",
			"    " + ui.StyleScore(fmt.Sprintf("%d Points", s.Score)),
			"",
			"    " + ui.StyleWordCount(fmt.Sprintf("correct %d  gave up %d  hints %d  misses %d",
				s.Stats.Correct, s.Stats.GaveUp, s.Stats.Hints, s.Stats.Misses)),
			"", "",
			"    " + ui.StyleHelp("enter:menu  q:quit"),
		},
		"\n",
	)
}

func (m *PracModel) infobar() string {
	if m.engine == nil || m.screen != screenQuiz {
		return ui.Line(
			m.viewport.Width,
			ui.Cell{Text: ui.StyleWordCount("words " + strconv.Itoa(m.catalog.Len()))},
			ui.Cell{Text: ui.StyleHelp("enter:start  v:learn  q:quit"), Align: ui.RightAlign},
		)
	}
	scoretext := "score " + strconv.Itoa(m.engine.Score())
	progresstext := strconv.Itoa(m.engine.Index()+1) + "/" + strconv.Itoa(m.engine.Total())
	return ui.Line(
		m.viewport.Width,
		ui.Cell{
			Width: len(scoretext) + 2,
			Text:  ui.StyleScore(scoretext),
		},
		ui.Cell{
			Text: ui.StyleCategory(m.engine.Label()),
		},
		ui.Cell{
			Text:  ui.StyleWordCount(progresstext),
			Align: ui.RightAlign,
		},
	)
}
