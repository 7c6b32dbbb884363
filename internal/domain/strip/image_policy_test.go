package strip

import (
	"net/url"
	"testing"

	"stampcard/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidImageURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"data:image/png;base64,AAA", false},
		{"https://x.com/a.png", true},
		{"http://x.com/a.png", true},
		{"", false},
		{"ftp://x.com/a.png", false},
		{"/relative/a.png", false},
		{"data:https://x.com/a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidImageURL(tt.url))
		})
	}
}

func TestSelectHeroImage_HeroMinimalist(t *testing.T) {
	c := HeroCandidates{Strip: "A", StripCompleted: "B"}

	got, err := SelectHeroImage(entity.StrategyHeroMinimalist, c, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "B", got)

	got, err = SelectHeroImage(entity.StrategyHeroMinimalist, c, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = SelectHeroImage(entity.StrategyHeroMinimalist, HeroCandidates{Hero: "H"}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "H", got)
}

func TestSelectHeroImage_ProgressiveStory(t *testing.T) {
	c := HeroCandidates{Progressive: []string{"p0", "p1", "", "p3"}}

	tests := []struct {
		name     string
		progress int
		want     string
	}{
		{"start", 0, "p0"},
		{"middle", 1, "p1"},
		{"empty slot falls back to first", 2, "p0"},
		{"beyond sequence clamps to last", 9, "p3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectHeroImage(entity.StrategyProgressiveStory, c, tt.progress, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := SelectHeroImage(entity.StrategyProgressiveStory, HeroCandidates{}, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectHeroImage_IconicGridHasNoHero(t *testing.T) {
	got, err := SelectHeroImage(entity.StrategyIconicGrid, HeroCandidates{Strip: "A", Hero: "H"}, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectHeroImage_UnknownStrategy(t *testing.T) {
	_, err := SelectHeroImage(entity.VisualStrategy("mosaic"), HeroCandidates{Strip: "A"}, 3, 10)
	assert.True(t, errors.Is(err, entity.ErrUnknownVisualStrategy))
}

func TestAvatarFallback_Durable(t *testing.T) {
	f := AvatarFallback{}

	assert.Equal(t, "https://cdn.example.com/a.png", f.Durable("https://cdn.example.com/a.png", "Cafe", "#112233"))

	got := f.Durable("data:image/png;base64,AAA", "Blue Bottle Coffee", "#112233")
	require.True(t, IsValidImageURL(got))

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "BB", u.Query().Get("name"))
	assert.Equal(t, "112233", u.Query().Get("background"))
	assert.Equal(t, got, f.Durable("", "Blue Bottle Coffee", "#112233"))
}

func TestAvatarFallback_InvalidBackground(t *testing.T) {
	u, err := url.Parse(AvatarFallback{BaseURL: "https://avatars.test/"}.URL("x", "not-a-color"))
	require.NoError(t, err)
	assert.Equal(t, "avatars.test", u.Host)
	assert.Equal(t, "1f2937", u.Query().Get("background"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "BB", Initials("blue bottle coffee"))
	assert.Equal(t, "C", Initials("  cafe "))
	assert.Equal(t, "?", Initials("   "))
	assert.Equal(t, "7E", Initials("7 eleven"))
}
