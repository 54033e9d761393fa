package catalog

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/spf13/afero"
	"github.com/yusan117/medtyping/utils"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// LoadHTML reads word tables from an html page. Every <table> is a category
// named by its <caption>, or by the closest <h2> before it.
func LoadHTML(fs afero.Fs, p string) (Catalog, error) {
	var c Catalog
	handle, err := fs.Open(p)
	if err != nil {
		return c, utils.FmtErrorf("read catalog "+p, err)
	}
	defer handle.Close()

	r, err := charset.NewReader(handle, "text/html")
	if err != nil {
		return c, utils.FmtErrorf("read catalog "+p, err)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return c, utils.FmtErrorf("parse catalog "+p, err)
	}

	for i, table := range htmlquery.Find(doc, `//table`) {
		cat := Category{Name: tableName(table)}
		if cat.Name == "" {
			cat.Name = fmt.Sprintf("table %d", i+1)
		}
		for j, tr := range htmlquery.Find(table, `.//tr[td]`) {
			cells := []string{}
			for _, td := range htmlquery.Find(tr, `./td`) {
				cells = append(cells, htmlquery.InnerText(td))
			}
			w, ok, err := parseRow(cells)
			if err != nil {
				return c, fmt.Errorf("%s row %d: %w", cat.Name, j+1, err)
			}
			if !ok {
				continue
			}
			cat.Words = append(cat.Words, w)
		}
		if len(cat.Words) == 0 {
			continue
		}
		c.Categories = append(c.Categories, cat)
	}
	return c, c.Validate()
}

func tableName(table *html.Node) string {
	if caption := htmlquery.FindOne(table, `./caption`); caption != nil {
		return strings.TrimSpace(utils.InnerTextWithOutChild(caption))
	}
	if h2 := htmlquery.FindOne(table, `./preceding-sibling::h2[1]`); h2 != nil {
		return strings.TrimSpace(htmlquery.InnerText(h2))
	}
	return ""
}
