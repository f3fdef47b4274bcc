package pov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStyleNilSource(t *testing.T) {
	b := &fakeBuilder{}
	choice := ResolveStyle(b, nil)

	assert.Equal(t, BaseStyle, choice.Style)
	assert.False(t, choice.Satellite)
	assert.Empty(t, b.registered)
}

func TestResolveStyleBlankToken(t *testing.T) {
	b := &fakeBuilder{}
	choice := ResolveStyle(b, func() string { return "   " })

	assert.Equal(t, BaseStyle, choice.Style)
	assert.Empty(t, b.registered)
}

func TestResolveStyleTrimsToken(t *testing.T) {
	b := &fakeBuilder{}
	choice := ResolveStyle(b, func() string { return "  pk.ABCDEFG  " })

	assert.True(t, choice.Satellite)
	assert.Equal(t, []string{"pk.ABCDEFG"}, b.registered)
}

func TestCaptionMasksToken(t *testing.T) {
	b := &fakeBuilder{}
	choice := ResolveStyle(b, func() string { return "pk.ABCDEFG" })

	caption := choice.Caption()
	assert.Contains(t, caption, "pk.…")
	assert.NotContains(t, caption, "ABCDEFG")
}

func TestCaptionShortTokenPlaceholder(t *testing.T) {
	b := &fakeBuilder{}
	choice := ResolveStyle(b, func() string { return "ab" })

	caption := choice.Caption()
	assert.Contains(t, caption, maskedTokenPlaceholder)
	assert.NotContains(t, caption, "ab…")
}

func TestCaptionWithoutSatellite(t *testing.T) {
	choice := StyleChoice{Style: BaseStyle}
	assert.Contains(t, choice.Caption(), "senza sfondo satellite")
}
