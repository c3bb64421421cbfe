package models

// ClipPlaceholderURL is used when a clip carries no link at all
const ClipPlaceholderURL = "#"

// Clip is one clip candidate returned by the workflow. Different workflows
// name the same fields differently, so every alternative is kept.
type Clip struct {
	File     string `json:"file,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	URL      string `json:"url,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Link returns the first non-empty of file, videoUrl and url
func (c Clip) Link() string {
	return firstNonEmpty(ClipPlaceholderURL, c.File, c.VideoURL, c.URL)
}

// CaptionText returns caption, falling back to text
func (c Clip) CaptionText() string {
	return firstNonEmpty("", c.Caption, c.Text)
}

func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
