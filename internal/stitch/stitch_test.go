package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		abbrev   string
		name     string
		category Category
		consumed int
		produced int
		rs, ws   string
	}{
		{"k", "knit", Regular, 1, 1, " ", "-"},
		{"p", "purl", Regular, 1, 1, "-", " "},
		{"yo", "yarn over", Increase, 0, 1, "O", "O"},
		{"kfb", "knit in front and back", Increase, 1, 2, "Y", "Y"},
		{"k2tog", "knit 2 together", Decrease, 2, 1, "/", "/."},
		{"ssk", "slip slip knit", Decrease, 2, 1, `\`, `\.`},
		{"s2kp2", "slip 2, knit 1, pass 2 slipped stitches over", Decrease, 3, 1, "^", "^"},
	}

	for _, tc := range testCases {
		t.Run(tc.abbrev, func(t *testing.T) {
			info, ok := Lookup(tc.abbrev)
			require.True(t, ok)
			assert.Equal(t, tc.name, info.Name)
			assert.Equal(t, tc.category, info.Category)
			assert.Equal(t, tc.consumed, info.Consumed)
			assert.Equal(t, tc.produced, info.Produced)
			assert.Equal(t, tc.rs, info.SymbolRS)
			assert.Equal(t, tc.ws, info.SymbolWS)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("k3tog")
	assert.False(t, ok)
	assert.False(t, Known(""))
}

func TestInfo_Delta(t *testing.T) {
	k, _ := Lookup("k")
	yo, _ := Lookup("yo")
	s2kp2, _ := Lookup("s2kp2")

	assert.Equal(t, 0, k.Delta())
	assert.Equal(t, 1, yo.Delta())
	assert.Equal(t, -2, s2kp2.Delta())
}

func TestCanonicalKey(t *testing.T) {
	expected := map[string]Meaning{
		" ":   {RS: "knit", WS: "purl"},
		"-":   {RS: "purl", WS: "knit"},
		"O":   {RS: "yarn over", WS: "yarn over"},
		"Y":   {RS: "knit in front and back", WS: "knit in front and back"},
		"/":   {RS: "knit 2 together", WS: "purl 2 together"},
		"/.":  {RS: "purl 2 together", WS: "knit 2 together"},
		`\`:   {RS: "slip slip knit", WS: "slip slip purl"},
		`\.`:  {RS: "slip slip purl", WS: "slip slip knit"},
		"^":   {RS: "slip 2, knit 1, pass 2 slipped stitches over", WS: "slip 2, knit 1, pass 2 slipped stitches over"},
	}

	assert.Equal(t, expected, CanonicalKey())
}

func TestAbbreviations_ReturnsCopy(t *testing.T) {
	abbrevs := Abbreviations()
	abbrevs[0] = "mutated"
	assert.Equal(t, "k", Abbreviations()[0])
}

func TestSuggest(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		found    bool
	}{
		{input: "k3tog", expected: "k2tog", found: true},
		{input: "kf", expected: "kfb", found: true},
		{input: "SSK", expected: "ssk", found: true},
		{input: "zzzzzzzz", found: false},
		{input: "", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := Suggest(tc.input)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
