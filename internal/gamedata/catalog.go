package gamedata

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured or the requested
// one has no embedded locale.
const DefaultLanguage = "en"

// Catalog translates UI string keys for one language.
type Catalog struct {
	lang     string
	messages map[string]*gotext.Translation
}

// LoadCatalog parses the embedded locale for lang.
func LoadCatalog(lang string) (*Catalog, error) {
	content, err := dataFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(content)
	return &Catalog{lang: lang, messages: po.GetDomain().GetTranslations()}, nil
}

// LoadCatalogOrDefault loads lang, falling back to DefaultLanguage.
// The returned error reports the fallback and is informational only.
func LoadCatalogOrDefault(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	catalog, err := LoadCatalog(lang)
	if err == nil {
		return catalog, nil
	}
	fallback, ferr := LoadCatalog(DefaultLanguage)
	if ferr != nil {
		return nil, ferr
	}
	return fallback, err
}

// Language returns the catalog's language code.
func (c *Catalog) Language() string {
	return c.lang
}

// Get returns the translation of key. Unknown keys are returned unchanged.
func (c *Catalog) Get(key string) string {
	if tr, ok := c.messages[key]; ok && tr.IsTranslated() {
		return tr.Get()
	}
	return key
}

// Getf returns the translation of key formatted with args.
func (c *Catalog) Getf(key string, args ...any) string {
	return gotext.FormatString(c.Get(key), args...)
}
