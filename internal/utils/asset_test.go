package utils_test

import (
	"testing"

	"github.com/mikiasgoitom/VidTube/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestAssetIDFromURL(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712/abc123.jpg": "abc123",
		"https://cdn.example.com/videos/0191-beef.mp4":                 "0191-beef",
		"https://cdn.example.com/videos/clip.final.mp4":                "clip",
		"https://cdn.example.com/thumbs/xyz.png?version=2":             "xyz",
		"noextension":                                                  "noextension",
		"":                                                             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.AssetIDFromURL(in), in)
	}
}
