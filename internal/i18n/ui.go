package i18n

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

//go:embed locales/ui.json
var defaultBundleData embed.FS

// Bundle is the serialised form of the UI strings.
type Bundle struct {
	DefaultLocale string                       `json:"default_locale"`
	Strings       map[string]map[string]string `json:"strings"`
}

// UI resolves interface strings with a fallback to the default locale and
// finally to the key itself.
type UI struct {
	defaultLocale string
	strings       map[string]map[string]string
}

var _ interfaces.Translator = (*UI)(nil)

// NewUI builds a translator over strings keyed by locale then message key.
func NewUI(defaultLocale string, strings map[string]map[string]string) *UI {
	if strings == nil {
		strings = map[string]map[string]string{}
	}
	return &UI{defaultLocale: defaultLocale, strings: strings}
}

// DefaultUI loads the strings embedded in the binary.
func DefaultUI() (*UI, error) {
	data, err := defaultBundleData.ReadFile("locales/ui.json")
	if err != nil {
		return nil, fmt.Errorf("i18n: read embedded ui bundle: %w", err)
	}
	bundle, err := decodeBundle(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewUI(bundle.DefaultLocale, bundle.Strings), nil
}

// LoadUI decodes a bundle from r.
func LoadUI(r io.Reader) (*UI, error) {
	bundle, err := decodeBundle(r)
	if err != nil {
		return nil, err
	}
	return NewUI(bundle.DefaultLocale, bundle.Strings), nil
}

// LoadUIFile reads a bundle from disk.
func LoadUIFile(ctx context.Context, path string) (*UI, error) {
	if path == "" {
		return nil, errors.New("i18n: ui bundle path cannot be empty")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("i18n: open ui bundle %q: %w", path, err)
	}
	defer file.Close()

	return LoadUI(file)
}

// T is shorthand for Translate.
func (u *UI) T(locale, key string) string {
	return u.Translate(locale, key)
}

// Translate returns the message for key in locale.
func (u *UI) Translate(locale, key string) string {
	if value := u.strings[locale][key]; value != "" {
		return value
	}
	if value := u.strings[u.defaultLocale][key]; value != "" {
		return value
	}
	return key
}

// Keys lists the message keys of the default locale in sorted order.
func (u *UI) Keys() []string {
	return slices.Sorted(maps.Keys(u.strings[u.defaultLocale]))
}

// For binds the translator to locale.
func (u *UI) For(locale string) func(key string) string {
	return func(key string) string {
		return u.Translate(locale, key)
	}
}

func decodeBundle(r io.Reader) (*Bundle, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var bundle Bundle
	if err := decoder.Decode(&bundle); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("i18n: decode ui bundle: %w", err)
	}
	if bundle.Strings == nil {
		bundle.Strings = map[string]map[string]string{}
	}
	return &bundle, nil
}
