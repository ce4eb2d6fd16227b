package catalog

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestIcon_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   Icon
	}{
		"heart":  {input: "heart", exp: IconHeart},
		"brain":  {input: "brain", exp: IconBrain},
		"coins":  {input: "coins", exp: IconCoins},
		"shield": {input: "shield", exp: IconShield},
		"anchor": {input: "anchor", exp: IconAnchor},
		"marker": {input: "marker", exp: IconFallback},

		// Unknown names degrade to the fallback glyph instead of failing
		// the asset load
		"unknown": {input: "dragon", exp: IconFallback},
		"empty":   {input: "", exp: IconFallback},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var i Icon
			err := i.UnmarshalText([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "icon", i, tt.exp)
		})
	}
}

func TestIcon_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(IconAnchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "encoded", string(data), `"anchor"`)

	var i Icon
	err = json.Unmarshal(data, &i)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "decoded", i, IconAnchor)
}

func TestIcon_Glyph(t *testing.T) {
	testutil.AssertEqual(t, "heart", IconHeart.Glyph(), "(<3)")
	testutil.AssertEqual(t, "fallback", IconFallback.Glyph(), "(*)")
}
