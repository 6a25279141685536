// Package l10n formats keyed, localized messages.
//
// Templates use positional placeholders: "converted {0} to {1}". Each
// argument is rendered with a golang.org/x/text/message printer for the
// resolved locale, so numbers get locale-specific grouping.
package l10n

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrMissingResource is returned when a key is absent from both the
	// matched bundle and the fallback bundle.
	ErrMissingResource = errors.New("l10n: missing resource")

	// ErrMalformedTemplate is returned when a template cannot be parsed or
	// its placeholders disagree with the supplied arguments.
	ErrMalformedTemplate = errors.New("l10n: malformed template")
)

// Bundle maps message keys to templates for one locale.
type Bundle map[string]string

// Catalog holds per-locale bundles and resolves requests against them.
//
// Thread safety: Catalog is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	fallback language.Tag
	tags     []language.Tag
	bundles  []Bundle
	matcher  language.Matcher
}

// NewCatalog creates an empty catalog whose fallback locale is fallback.
func NewCatalog(fallback language.Tag) *Catalog {
	c := &Catalog{fallback: fallback}
	c.add(fallback, Bundle{})
	return c
}

// Add merges b into the bundle for tag.
func (c *Catalog) Add(tag language.Tag, b Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(tag, b)
}

func (c *Catalog) add(tag language.Tag, b Bundle) {
	for i, t := range c.tags {
		if t == tag {
			for k, v := range b {
				c.bundles[i][k] = v
			}
			return
		}
	}
	nb := make(Bundle, len(b))
	for k, v := range b {
		nb[k] = v
	}
	c.tags = append(c.tags, tag)
	c.bundles = append(c.bundles, nb)
	c.matcher = language.NewMatcher(c.tags)
}

// Fallback returns the fallback locale.
func (c *Catalog) Fallback() language.Tag { return c.fallback }

// Format renders the template for key in the locale best matching tag.
// If the matched bundle lacks the key, the fallback bundle is used.
func (c *Catalog) Format(key string, tag language.Tag, args ...any) (string, error) {
	tmpl, resolved, err := c.lookup(key, tag)
	if err != nil {
		return "", err
	}
	return render(tmpl, message.NewPrinter(resolved), args)
}

func (c *Catalog) lookup(key string, tag language.Tag) (string, language.Tag, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, idx, conf := c.matcher.Match(tag)
	if conf != language.No {
		if tmpl, ok := c.bundles[idx][key]; ok {
			return tmpl, c.tags[idx], nil
		}
	}
	// The fallback bundle is always first.
	if tmpl, ok := c.bundles[0][key]; ok {
		return tmpl, c.tags[0], nil
	}
	return "", language.Und, fmt.Errorf("%w: %q for %s", ErrMissingResource, key, tag)
}

// render substitutes {n} placeholders. Every argument must be referenced
// and every placeholder must name an argument.
func render(tmpl string, p *message.Printer, args []any) (string, error) {
	var sb strings.Builder
	used := make([]bool, len(args))

	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]
		switch ch {
		case '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrMalformedTemplate, tmpl)
			}
			n, err := strconv.Atoi(tmpl[i+1 : i+end])
			if err != nil || n < 0 {
				return "", fmt.Errorf("%w: bad placeholder %q", ErrMalformedTemplate, tmpl[i:i+end+1])
			}
			if n >= len(args) {
				return "", fmt.Errorf("%w: placeholder {%d} with %d args", ErrMalformedTemplate, n, len(args))
			}
			used[n] = true
			sb.WriteString(p.Sprint(args[n]))
			i += end
		case '}':
			return "", fmt.Errorf("%w: stray '}' in %q", ErrMalformedTemplate, tmpl)
		default:
			sb.WriteByte(ch)
		}
	}

	for n, ok := range used {
		if !ok {
			return "", fmt.Errorf("%w: argument %d unused", ErrMalformedTemplate, n)
		}
	}
	return sb.String(), nil
}
