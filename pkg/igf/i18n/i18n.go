// Package i18n provides localized labels for the buttons igf creates on
// its own, such as page navigation and the empty-page placeholder.
//
// English and Japanese are built in. Plugins can add or override languages
// with message files in go-i18n's TOML format.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is used for unknown locales and missing messages.
var DefaultLanguage = language.Make(constants.DefaultLocale)

// Message IDs of the built-in labels.
const (
	MessagePreviousPage = "PreviousPage"
	MessageNextPage     = "NextPage"
	MessageEmptyPage    = "EmptyPage"
)

var defaultMessages = map[string]*goi18n.Message{
	MessagePreviousPage: {ID: MessagePreviousPage, Other: "Previous page"},
	MessageNextPage:     {ID: MessageNextPage, Other: "Next page"},
	MessageEmptyPage:    {ID: MessageEmptyPage, Other: "Nothing to show"},
}

// Labels are the texts of the framework's own buttons in one language.
type Labels struct {
	PreviousPage string
	NextPage     string
	EmptyPage    string
}

// Catalog holds the loaded translations.
type Catalog struct {
	bundle *goi18n.Bundle
}

// NewCatalog loads the built-in translations.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read built-in locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", e.Name())); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", e.Name(), err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// LoadFile adds translations from a message file named like "active.de.toml".
// Messages in the file override built-in ones for the same language.
func (c *Catalog) LoadFile(filename string) error {
	if _, err := c.bundle.LoadMessageFile(filename); err != nil {
		return fmt.Errorf("i18n: load %s: %w", filename, err)
	}
	return nil
}

// Languages returns the languages with loaded translations.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Match returns the best supported language for a client locale.
// Both BCP 47 tags ("ja-JP") and game client locales ("ja_jp") are accepted;
// unparseable or unsupported locales match DefaultLanguage.
func (c *Catalog) Match(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}

	supported := c.Languages()
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supported[index]
}

// Labels returns the labels for the first matching locale.
func (c *Catalog) Labels(locale string) Labels {
	localizer := goi18n.NewLocalizer(c.bundle, c.Match(locale).String())
	return Labels{
		PreviousPage: localize(localizer, MessagePreviousPage),
		NextPage:     localize(localizer, MessageNextPage),
		EmptyPage:    localize(localizer, MessageEmptyPage),
	}
}

func localize(localizer *goi18n.Localizer, id string) string {
	// Localize reports MessageNotFoundErr alongside a usable fallback text.
	s, _ := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: defaultMessages[id],
	})
	if s == "" {
		return defaultMessages[id].Other
	}
	return s
}
