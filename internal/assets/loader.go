package assets

// Template names known to the page generator.
const (
	TemplateMain     = "main"
	TemplateSubpage  = "subpage"
	TemplateInternal = "internal"
	TemplateCard     = "card"
)

// AssetLoader defines the contract for loading page templates.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// TemplateSet holds the sources of every template a run needs.
type TemplateSet struct {
	Main     string
	Subpage  string
	Internal string
	Card     string
}

// LoadTemplateSet loads all page templates from loader.
func LoadTemplateSet(loader AssetLoader) (*TemplateSet, error) {
	var ts TemplateSet
	targets := []struct {
		name string
		dst  *string
	}{
		{TemplateMain, &ts.Main},
		{TemplateSubpage, &ts.Subpage},
		{TemplateInternal, &ts.Internal},
		{TemplateCard, &ts.Card},
	}
	for _, t := range targets {
		content, err := loader.LoadTemplate(t.name)
		if err != nil {
			return nil, err
		}
		*t.dst = content
	}
	return &ts, nil
}

// DefaultTemplateSet returns the embedded templates.
func DefaultTemplateSet() (*TemplateSet, error) {
	return LoadTemplateSet(NewEmbeddedLoader())
}
