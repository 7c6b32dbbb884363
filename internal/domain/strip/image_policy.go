package strip

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"stampcard/internal/domain/entity"

	"github.com/pkg/errors"
)

// HeroCandidates are the uploaded images a hero can be chosen from.
type HeroCandidates struct {
	Strip          string
	Hero           string
	StripCompleted string
	Progressive    []string
}

// CandidatesFrom collects the hero candidates of a program's assets.
func CandidatesFrom(assets entity.Assets) HeroCandidates {
	return HeroCandidates{
		Strip:          assets.Strip,
		Hero:           assets.Hero,
		StripCompleted: assets.StripCompleted,
		Progressive:    assets.Progressive,
	}
}

// SelectHeroImage picks the single image a provider shows as hero/strip.
// An empty result means no image: iconic_grid programs render the grid
// instead of selecting a URL.
func SelectHeroImage(strategy entity.VisualStrategy, c HeroCandidates, progress, total int) (string, error) {
	switch strategy {
	case entity.StrategyProgressiveStory:
		if len(c.Progressive) == 0 {
			return "", nil
		}
		idx := min(max(progress, 0), len(c.Progressive)-1)
		if c.Progressive[idx] != "" {
			return c.Progressive[idx], nil
		}

		return c.Progressive[0], nil
	case entity.StrategyHeroMinimalist:
		if progress >= total && c.StripCompleted != "" {
			return c.StripCompleted, nil
		}
		if c.Strip != "" {
			return c.Strip, nil
		}

		return c.Hero, nil
	case entity.StrategyIconicGrid:
		return "", nil
	}

	return "", errors.Wrapf(entity.ErrUnknownVisualStrategy, "%q", strategy)
}

// IsValidImageURL reports whether url is durable enough to hand to a wallet
// provider: an absolute http(s) URL and never a data URI. Providers cache by
// URL and cannot reliably dereference data URIs.
func IsValidImageURL(url string) bool {
	if url == "" || strings.HasPrefix(url, "data:") {
		return false
	}

	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// DefaultAvatarBaseURL renders initials avatars.
const DefaultAvatarBaseURL = "https://ui-avatars.com/api/"

// AvatarFallback builds the deterministic initials avatar used when an
// image reference is not durable.
type AvatarFallback struct {
	BaseURL string
}

// URL returns the avatar for a business name on the given background color.
func (f AvatarFallback) URL(businessName, backgroundHex string) string {
	base := f.BaseURL
	if base == "" {
		base = DefaultAvatarBaseURL
	}

	bg := strings.TrimPrefix(strings.ToLower(backgroundHex), "#")
	if _, err := ParseHexColor(bg); err != nil || bg == "" {
		bg = strings.TrimPrefix(DefaultBackground, "#")
	}

	q := url.Values{}
	q.Set("name", Initials(businessName))
	q.Set("background", bg)
	q.Set("color", "ffffff")
	q.Set("size", "660")
	q.Set("bold", "true")
	q.Set("format", "png")

	return fmt.Sprintf("%s?%s", base, q.Encode())
}

// Durable returns url when it passes IsValidImageURL and the avatar
// fallback otherwise.
func (f AvatarFallback) Durable(imageURL, businessName, backgroundHex string) string {
	if IsValidImageURL(imageURL) {
		return imageURL
	}

	return f.URL(businessName, backgroundHex)
}

// Initials returns up to two upper-case initials of name, or "?" for a blank name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))

				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}

	return string(out)
}
