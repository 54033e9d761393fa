package utils

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
)

func FmtErrorf(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// InnerTextWithOutChild returns the text directly inside n, skipping the
// content of child elements.
func InnerTextWithOutChild(n *html.Node) string {
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			buf.WriteString(child.Data)
		}
	}
	return buf.String()
}
