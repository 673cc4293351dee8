// Package locale loads the per-language string tables shown by the hosts.
package locale

import (
	"embed"
	"fmt"
	"sort"

	"notepad/internal/config"
	"notepad/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed strings/*.yaml
var tables embed.FS

// Catalog maps dotted string keys to display text for one language.
type Catalog struct {
	language config.Language
	strings  map[string]string
}

// Load parses the table for lang. An unknown or unreadable table returns the
// English catalog together with the error.
func Load(lang config.Language) (*Catalog, error) {
	c, err := load(lang)
	if err == nil {
		return c, nil
	}
	if lang == config.English {
		return &Catalog{language: config.English, strings: map[string]string{}}, err
	}
	fallback, ferr := load(config.English)
	if ferr != nil {
		fallback = &Catalog{language: config.English, strings: map[string]string{}}
	}
	return fallback, err
}

func load(lang config.Language) (*Catalog, error) {
	if !lang.Valid() {
		return nil, errors.NewLocaleError("unknown language", string(lang), errors.LocaleNotFound, nil)
	}

	data, err := tables.ReadFile("strings/" + string(lang) + ".yaml")
	if err != nil {
		return nil, errors.NewLocaleError("missing string table", string(lang), errors.LocaleNotFound, err)
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, errors.NewLocaleError("malformed string table", string(lang), errors.MalformedLocale, err)
	}

	c := &Catalog{language: lang, strings: make(map[string]string)}
	flatten("", tree, c.strings)
	return c, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Language returns the catalog's language.
func (c *Catalog) Language() config.Language {
	return c.language
}

// Text returns the display string for key, or key itself when missing.
func (c *Catalog) Text(key string) string {
	if c == nil {
		return key
	}
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// Textf formats the display string for key with args.
func (c *Catalog) Textf(key string, args ...interface{}) string {
	return fmt.Sprintf(c.Text(key), args...)
}

// Keys returns every key in the catalog, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.strings))
	for k := range c.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
