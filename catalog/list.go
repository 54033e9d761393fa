package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// List prints one line per category: name, word count and levels.
func List(w io.Writer, c Catalog) error {
	for _, cat := range c.Categories {
		levels := []string{}
		for _, lv := range (Catalog{Categories: []Category{cat}}).Levels() {
			levels = append(levels, strconv.Itoa(lv))
		}
		_, err := fmt.Fprintf(w, "%s%-8d%s\n", runewidth.FillRight(cat.Name, 20), len(cat.Words), "Lv."+strings.Join(levels, ","))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d words\n", c.Len())
	return err
}
