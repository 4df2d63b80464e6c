// Package parser extracts readable plain text from HTML documents.
package parser

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type Parser struct{}

// ExtractText pulls the readable text out of an HTML document. It lets
// go-readability distill the main article first and falls back to scanning
// content-bearing tags with goquery when no article can be found, so pages
// without article structure (indexes, reference docs) still yield text.
func (p *Parser) ExtractText(rawURL, html string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return normalizeText(article.TextContent), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	doc.Find("h1,h2,h3,h4,p,li,td,pre").Each(func(i int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})
	return strings.TrimSpace(b.String()), nil
}

// Title returns the document title: readability's if available, otherwise
// the <title> tag.
func (p *Parser) Title(rawURL, html string) string {
	if parsedURL, err := url.Parse(rawURL); err == nil {
		readabilityParser := readability.NewParser()
		article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
		if err == nil && article.Title != "" {
			return normalizeText(article.Title)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return normalizeText(doc.Find("title").First().Text())
}

// normalizeText collapses a block of text onto one line, dropping blank
// lines and surrounding whitespace.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
