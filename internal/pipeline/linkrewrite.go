package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidSiteURL indicates a site URL that is not an absolute http(s) URL.
var ErrInvalidSiteURL = errors.New("invalid site URL")

// RewriteSiteLinks prefixes root-relative link and image paths with siteURL,
// so a preview opened from disk points at the published site.
// If siteURL is empty, returns the HTML unchanged.
//
// Rewrites:
//   - a[href] and img[src] starting with a single "/"
//
// Leaves alone:
//   - relative paths, anchors and full URLs
//   - protocol-relative URLs ("//cdn...")
func RewriteSiteLinks(htmlContent, siteURL string) (string, error) {
	if siteURL == "" {
		return htmlContent, nil
	}

	base, err := url.Parse(siteURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSiteURL, siteURL)
	}
	prefix := strings.TrimSuffix(base.String(), "/")

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, prefix)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites root-relative paths.
func rewriteNode(n *html.Node, prefix string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", prefix)
		case atom.A:
			rewriteAttr(n, "href", prefix)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, prefix)
	}
}

func rewriteAttr(n *html.Node, attrName, prefix string) {
	for i, attr := range n.Attr {
		if attr.Key == attrName && isRootRelative(attr.Val) {
			n.Attr[i].Val = prefix + attr.Val
		}
	}
}

// isRootRelative reports whether path is a site path such as "/portfolio/x/".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
