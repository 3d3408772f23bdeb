package ui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
	"golang.org/x/net/html"
)

// blockElements end a line when a posting's HTML is flattened to text
const blockElements = "p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, tr, section, article"

// PlainText strips HTML markup from a job detail, keeping paragraph breaks.
// Text without markup is returned trimmed but otherwise untouched.
func PlainText(detail string) string {
	if !strings.ContainsAny(detail, "<>&") {
		return strings.TrimSpace(detail)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(detail))
	if err != nil {
		return strings.TrimSpace(detail)
	}

	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(newline())
	})
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(newline())
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = utils.NormalizeSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
