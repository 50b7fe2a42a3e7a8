// Package assets provides the page templates used to render Jekyll pages.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to
// EmbeddedLoader per template, so a site can override only the card markup
// and keep the built-in page bodies.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    ├── main.tmpl       # Main page body (text/template)
//	    ├── subpage.tmpl    # Grouping sub-page body (text/template)
//	    ├── internal.tmpl   # Internal page body (text/template)
//	    └── card.tmpl       # One card (html/template)
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
