// Package pipeline holds the text and HTML transformations applied to page
// bodies:
//   - Markdown clean-up (line endings, blank line after pipe tables)
//   - front matter stripping for embedded source documents
//   - Markdown to HTML rendering via Goldmark for local previews
//   - root-relative link rewriting in rendered HTML
//
// Page assembly and writing live in the root toc2jekyll package; this
// package only transforms strings.
package pipeline
