// Package htmlmask applies the mask transform to the text nodes of an HTML
// document, leaving markup, attributes, scripts and styles untouched.
package htmlmask

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wordmask/internal/mask"
)

var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// Transform masks banned words inside every text node of document.
func Transform(document string, banned mask.WordSet, mapping mask.Mapping) (string, error) {
	out, _, err := TransformWithStats(document, banned, mapping)
	return out, err
}

// TransformWithStats behaves like Transform and sums the stats of every
// masked text node. Full documents are rendered back whole; fragments are
// parsed in a body context and rendered node by node so head-only elements
// such as <title> stay where they were.
func TransformWithStats(document string, banned mask.WordSet, mapping mask.Mapping) (string, mask.Stats, error) {
	var stats mask.Stats
	if isFragment(document) {
		return transformFragment(document, banned, mapping)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", stats, fmt.Errorf("parse html: %w", err)
	}
	for _, node := range doc.Selection.Nodes {
		maskTextNodes(node, banned, mapping, &stats)
	}
	out, err := doc.Html()
	if err != nil {
		return "", stats, fmt.Errorf("render html: %w", err)
	}
	return out, stats, nil
}

func transformFragment(document string, banned mask.WordSet, mapping mask.Mapping) (string, mask.Stats, error) {
	var stats mask.Stats
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(document), body)
	if err != nil {
		return "", stats, fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	for _, node := range nodes {
		maskTextNodes(node, banned, mapping, &stats)
		if err := html.Render(&b, node); err != nil {
			return "", stats, fmt.Errorf("render html: %w", err)
		}
	}
	return b.String(), stats, nil
}

func maskTextNodes(node *html.Node, banned mask.WordSet, mapping mask.Mapping, stats *mask.Stats) {
	switch node.Type {
	case html.TextNode:
		var s mask.Stats
		node.Data, s = mask.TransformWithStats(node.Data, banned, mapping)
		stats.Tokens += s.Tokens
		stats.Matched += s.Matched
		stats.Changed += s.Changed
		return
	case html.ElementNode:
		if _, skip := skippedElements[strings.ToLower(node.Data)]; skip {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		maskTextNodes(child, banned, mapping, stats)
	}
}

func isFragment(document string) bool {
	lower := strings.ToLower(document)
	return !strings.Contains(lower, "<html") && !strings.Contains(lower, "<body")
}
