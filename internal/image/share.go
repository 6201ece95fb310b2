package imagepkg

import (
	"net/url"
	"strconv"
	"strings"
)

// ShareURL is the GET render link for a sticker under base. Zero width or height
// is left out so the server default applies.
func ShareURL(base, text, emotion string, width, height int) string {
	q := url.Values{}
	q.Set("text", text)
	if emotion != "" {
		q.Set("emotion", emotion)
	}
	if width != 0 {
		q.Set("width", strconv.Itoa(width))
	}
	if height != 0 {
		q.Set("height", strconv.Itoa(height))
	}
	return strings.TrimRight(base, "/") + "/api/bubble.png?" + q.Encode()
}
