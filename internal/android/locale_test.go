package android

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLocaleTag(t *testing.T) {
	testCases := []struct {
		name       string
		tag        string
		wantLang   string
		wantRegion string
		wantErr    bool
	}{
		{name: "language and region", tag: "en-US", wantLang: "en", wantRegion: "US"},
		{name: "language only", tag: "en", wantLang: "en"},
		{name: "with script", tag: "sr-Latn-RS", wantLang: "sr", wantRegion: "RS"},
		{name: "french", tag: "fr-FR", wantLang: "fr", wantRegion: "FR"},
		{name: "garbage", tag: "!!not-a-locale!!", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lang, region, err := SplitLocaleTag(tc.tag)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLang, lang)
			assert.Equal(t, tc.wantRegion, region)
		})
	}
}

func TestJoinLocaleTag(t *testing.T) {
	assert.Equal(t, "en-US", JoinLocaleTag("en", "US"))
	assert.Equal(t, "en", JoinLocaleTag("en", ""))
}
