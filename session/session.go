package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/yusan117/medtyping/catalog"
)

var (
	ErrEmptySelection  = errors.New("条件に一致する単語がありません。設定を見直してください。")
	ErrUnknownCategory = errors.New("unknown category")
)

const (
	// RandomLabel is the menu entry for every category combined.
	RandomLabel = "ランダム (全範囲)"
	// RandomName names such a session on the result screen.
	RandomName   = "ランダム"
	CheckedLabel = "(チェック)"
)

type Options struct {
	Category string
	// All combines every category and ignores Category.
	All bool
	// Level keeps only words of exactly this level, 0 keeps all.
	Level int
	// Count caps the queue length, 0 keeps all.
	Count       int
	CheckedOnly bool
}

type Checker interface {
	IsChecked(id string) bool
}

// Rand picks a uniform int in [0, n).
type Rand interface {
	Intn(n int) int
}

func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type Builder struct {
	Catalog catalog.Catalog
	Checker Checker
	Rand    Rand
}

// Build returns the shuffled quiz queue for opts.
func (b Builder) Build(opts Options) ([]catalog.Word, error) {
	var pool []catalog.Word
	if opts.All {
		pool = b.Catalog.All()
	} else {
		cat, ok := b.Catalog.Category(opts.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, opts.Category)
		}
		pool = append(pool, cat.Words...)
	}

	words := make([]catalog.Word, 0, len(pool))
	for _, w := range pool {
		if opts.Level != 0 && w.Level != opts.Level {
			continue
		}
		if opts.CheckedOnly && (b.Checker == nil || !b.Checker.IsChecked(w.ID())) {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, ErrEmptySelection
	}

	rnd := b.Rand
	if rnd == nil {
		rnd = NewRand(0)
	}
	Shuffle(words, rnd)

	if opts.Count > 0 && len(words) > opts.Count {
		words = words[:opts.Count]
	}
	return words, nil
}

// Shuffle is a Fisher-Yates permutation of words in place.
func Shuffle(words []catalog.Word, rnd Rand) {
	for i := len(words) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

// Label names the session on the result screen.
func Label(opts Options) string {
	label := opts.Category
	if opts.All {
		label = RandomName
	}
	if opts.CheckedOnly {
		label += CheckedLabel
	}
	return label
}
