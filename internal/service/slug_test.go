package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Camp 2025":      "summer-camp-2025",
		"  Hello,   World!  ":   "hello-world",
		"Déjà Vu":               "déjà-vu",
		"---":                   "untitled",
		"Youth / Climate Forum": "youth-climate-forum",
	}
	for input, want := range cases {
		assert.Equal(t, want, slugify(input), "slugify(%q)", input)
	}
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	taken := map[string]bool{"summer-camp": true, "summer-camp-2": true}
	slug, err := uniqueSlug(context.Background(), "summer-camp", func(ctx context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "summer-camp-3", slug)
}

func TestUniqueSlugFreeBaseUnchanged(t *testing.T) {
	slug, err := uniqueSlug(context.Background(), "open-day", func(ctx context.Context, candidate string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "open-day", slug)
}
