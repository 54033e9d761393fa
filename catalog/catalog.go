package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var ErrInvalidWord = errors.New("invalid word")

// letters separated by spaces; anything else could never be typed in a quiz
var validtarget = regexp.MustCompile(`^[A-Za-z]+( +[A-Za-z]+)*$`)

type Word struct {
	Prompt string `yaml:"ja"`
	Target string `yaml:"en"`
	Level  int    `yaml:"level"`
}

// ID is the checkmark identity of the word.
func (w Word) ID() string {
	return w.Target
}

type Category struct {
	Name  string `yaml:"name"`
	Words []Word `yaml:"words"`
}

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

func (c Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// All concatenates the words of every category in display order.
func (c Catalog) All() []Word {
	words := []Word{}
	for _, cat := range c.Categories {
		words = append(words, cat.Words...)
	}
	return words
}

func (c Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Words)
	}
	return n
}

func (c Catalog) Levels() []int {
	seen := map[int]bool{}
	levels := []int{}
	for _, w := range c.All() {
		if seen[w.Level] {
			continue
		}
		seen[w.Level] = true
		levels = append(levels, w.Level)
	}
	sort.Ints(levels)
	return levels
}

func (c Catalog) Validate() error {
	names := map[string]bool{}
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("%w: category without name", ErrInvalidWord)
		}
		if names[cat.Name] {
			return fmt.Errorf("%w: duplicate category %s", ErrInvalidWord, cat.Name)
		}
		names[cat.Name] = true
		for _, w := range cat.Words {
			if !validtarget.MatchString(w.Target) {
				return fmt.Errorf("%w: '%s' in %s", ErrInvalidWord, w.Target, cat.Name)
			}
			if strings.TrimSpace(w.Prompt) == "" {
				return fmt.Errorf("%w: '%s' in %s has no prompt", ErrInvalidWord, w.Target, cat.Name)
			}
			if w.Level < 1 {
				return fmt.Errorf("%w: '%s' in %s has level %d", ErrInvalidWord, w.Target, cat.Name, w.Level)
			}
		}
	}
	return nil
}

// Duplicates returns the targets used by more than one word, mapped to the
// categories they appear in. Such words share one checkmark.
func (c Catalog) Duplicates() map[string][]string {
	where := map[string][]string{}
	for _, cat := range c.Categories {
		for _, w := range cat.Words {
			where[w.ID()] = append(where[w.ID()], cat.Name)
		}
	}
	dups := map[string][]string{}
	for id, cats := range where {
		if len(cats) > 1 {
			dups[id] = cats
		}
	}
	return dups
}
