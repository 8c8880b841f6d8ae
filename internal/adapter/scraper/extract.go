package scraper

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, name string) bool {
	for _, cls := range strings.Fields(attrValue(n, "class")) {
		if cls == name {
			return true
		}
	}
	return false
}

// findFirstHeading locates Wikipedia's firstHeading h1 (matched by class or
// id) and returns its text.
func findFirstHeading(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.H1 {
		if hasClass(n, "firstHeading") || attrValue(n, "id") == "firstHeading" {
			return strings.TrimSpace(collectText(n))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findFirstHeading(c); t != "" {
			return t
		}
	}
	return ""
}

// findContentRoot locates div#mw-content-text, preferring the nested
// div.mw-parser-output when present.
func findContentRoot(doc *html.Node) *html.Node {
	content := findNode(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Div && attrValue(n, "id") == "mw-content-text"
	})
	if content == nil {
		return nil
	}
	if parserOut := findNode(content, func(n *html.Node) bool {
		return n.DataAtom == atom.Div && hasClass(n, "mw-parser-output")
	}); parserOut != nil {
		return parserOut
	}
	return content
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

// isNoise reports whether a subtree is boilerplate relative to narrative
// text: citation markers, tables (infoboxes included), style/script blocks,
// navigation and reference-list boxes, and inline edit affordances.
func isNoise(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Sup, atom.Table, atom.Style, atom.Script, atom.Noscript:
		return true
	case atom.Div:
		return hasClass(n, "navbox") || hasClass(n, "vertical-navbox") ||
			hasClass(n, "reflist") || hasClass(n, "refbegin")
	case atom.Span:
		return hasClass(n, "mw-editsection")
	}
	return false
}

// collectParagraphs gathers the trimmed text of every non-noise <p> under
// root, dropping empty ones.
func collectParagraphs(root *html.Node) []string {
	var paragraphs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isNoise(n) {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			if text := strings.TrimSpace(collectText(n)); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return paragraphs
}

// collectText concatenates the text nodes of a subtree, skipping noise.
func collectText(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isNoise(n) {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}
