package l10n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Message keys used by the pixconv command.
const (
	KeyUsage            = "usage"
	KeyNoInput          = "no.input"
	KeyUnknownSrcFormat = "unknown.source.format"
	KeyUnknownDstFormat = "unknown.destination.format"
	KeyUnknownVariant   = "unknown.variant"
	KeyUnsupportedPair  = "unsupported.conversion"
	KeyConvertFailed    = "convert.failed"
	KeyConverted        = "converted"
	KeySummary          = "summary"
	KeyInvalidResize    = "invalid.resize"
)

var english = Bundle{
	KeyUsage:            "Usage: {0} [flags] input...",
	KeyNoInput:          "no input files",
	KeyUnknownSrcFormat: "unknown source format {0}, valid formats are {1}",
	KeyUnknownDstFormat: "unknown destination format {0}, valid formats are {1}",
	KeyUnknownVariant:   "unknown variant {0}, valid variants are {1}",
	KeyUnsupportedPair:  "cannot convert {0} to {1}",
	KeyConvertFailed:    "converting {0} failed: {1}",
	KeyConverted:        "converted {0} ({1} x {2} pixels) to {3}",
	KeySummary:          "{0} of {1} images converted",
	KeyInvalidResize:    "invalid size {0}, expected WIDTHxHEIGHT",
}

var german = Bundle{
	KeyUsage:            "Aufruf: {0} [Optionen] Eingabe...",
	KeyNoInput:          "keine Eingabedateien",
	KeyUnknownSrcFormat: "unbekanntes Quellformat {0}, gültige Formate sind {1}",
	KeyUnknownDstFormat: "unbekanntes Zielformat {0}, gültige Formate sind {1}",
	KeyUnknownVariant:   "unbekannte Variante {0}, gültige Varianten sind {1}",
	KeyUnsupportedPair:  "{0} kann nicht nach {1} konvertiert werden",
	KeyConvertFailed:    "Konvertierung von {0} fehlgeschlagen: {1}",
	KeyConverted:        "{0} ({1} x {2} Pixel) nach {3} konvertiert",
	KeySummary:          "{0} von {1} Bildern konvertiert",
	KeyInvalidResize:    "ungültige Größe {0}, erwartet BREITExHÖHE",
}

// Default is the catalog holding the command's messages, with English as
// the fallback locale.
var Default = func() *Catalog {
	c := NewCatalog(language.English)
	c.Add(language.English, english)
	c.Add(language.German, german)
	return c
}()

// Localize formats key from the Default catalog. Errors are folded into
// the returned text so that messages are never silently dropped.
func Localize(tag language.Tag, key string, args ...any) string {
	s, err := Default.Format(key, tag, args...)
	if err != nil {
		return fmt.Sprintf("%s %v (%v)", key, args, err)
	}
	return s
}

// Usage returns the command usage line for prog.
func Usage(tag language.Tag, prog any) string {
	return Localize(tag, KeyUsage, prog)
}

// NoInput reports that no input files were given.
func NoInput(tag language.Tag) string {
	return Localize(tag, KeyNoInput)
}

// UnknownSrcFormat reports an unrecognized source format and lists the valid names.
func UnknownSrcFormat(tag language.Tag, name, valid any) string {
	return Localize(tag, KeyUnknownSrcFormat, name, valid)
}

// UnknownDstFormat reports an unrecognized destination format and lists the valid names.
func UnknownDstFormat(tag language.Tag, name, valid any) string {
	return Localize(tag, KeyUnknownDstFormat, name, valid)
}

// UnknownVariant reports an unrecognized conversion variant and lists the valid names.
func UnknownVariant(tag language.Tag, name, valid any) string {
	return Localize(tag, KeyUnknownVariant, name, valid)
}

// UnsupportedPair reports that no converter exists from src to dst.
func UnsupportedPair(tag language.Tag, src, dst any) string {
	return Localize(tag, KeyUnsupportedPair, src, dst)
}

// ConvertFailed reports that converting path failed with err.
func ConvertFailed(tag language.Tag, path, err any) string {
	return Localize(tag, KeyConvertFailed, path, err)
}

// Converted reports a finished w x h conversion of path written to out.
func Converted(tag language.Tag, path, w, h, out any) string {
	return Localize(tag, KeyConverted, path, w, h, out)
}

// Summary reports how many of total inputs converted successfully.
func Summary(tag language.Tag, done, total any) string {
	return Localize(tag, KeySummary, done, total)
}

// InvalidResize reports a malformed WxH size.
func InvalidResize(tag language.Tag, spec any) string {
	return Localize(tag, KeyInvalidResize, spec)
}
