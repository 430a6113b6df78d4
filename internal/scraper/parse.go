package scraper

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-career-watcher/internal/models"
)

// NormalizeTitle folds diacritics and lowercases a slug so the same role
// always yields the same title string.
func NormalizeTitle(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// ParseLink extracts {id, title, link} from a listing detail URL. The
// trailing path segment must look like "<id>-<title-slug>"; anything else
// is rejected and the caller drops it.
func ParseLink(href string) (models.Listing, bool) {
	parsed, err := url.Parse(href)
	if err != nil {
		return models.Listing{}, false
	}

	path := strings.TrimRight(parsed.Path, "/")
	segs := strings.Split(path, "/")
	last := segs[len(segs)-1]

	idx := strings.Index(last, "-")
	if idx <= 0 || idx == len(last)-1 {
		return models.Listing{}, false
	}

	id := last[:idx]
	slug := last[idx+1:]

	return models.Listing{
		ID:    id,
		Title: NormalizeTitle(slug),
		Link:  href,
	}, true
}
