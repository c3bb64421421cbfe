// Package views renders the single page UI. Everything here is a pure
// function of a services.UIState snapshot.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/onegreenvn/repurposer-ui/internal/services"
)

const (
	PageTemplate = "page.html"

	MissingEndpointText = "Missing .env vars"
	SubmitLabel         = "Submit"
	BusySubmitLabel     = "Processing…"
	CopyLabel           = "Copy caption"
	CopiedLabel         = "Copied"
	NoCaptionText       = "No caption"
	NoClipsText         = "No clips returned."
	PlaceholderText     = "Results will appear here after submission."
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

// Templates returns the parsed page and fragment templates
func Templates() *template.Template {
	return templates
}

// AspectOption is one entry of the aspect ratio select
type AspectOption struct {
	Value    string
	Selected bool
}

// Card is the view data of one clip
type Card struct {
	Index     int
	Link      string
	Caption   string
	CopyLabel string
	Copied    bool
}

// Page is the complete view model of the UI
type Page struct {
	BasePath string

	Form          models.FormInput
	AspectOptions []AspectOption
	MinLength     int
	MaxLength     int
	LengthStep    int

	Endpoint        string
	EndpointMissing bool

	Loading     bool
	SubmitLabel string

	Error    string
	HasError bool

	HasResponse bool
	RawJSON     string
	Cards       []Card
	NoClips     bool

	ShowPlaceholder bool
}

// BuildPage maps controller state to view data
func BuildPage(state services.UIState, basePath string) Page {
	p := Page{
		BasePath:    basePath,
		Form:        state.Form,
		MinLength:   models.MinClipLengthSeconds,
		MaxLength:   models.MaxClipLengthSeconds,
		LengthStep:  models.ClipLengthStepSeconds,
		Endpoint:    state.Endpoint,
		Loading:     state.Loading,
		SubmitLabel: SubmitLabel,
	}

	for _, ratio := range models.AspectRatios {
		p.AspectOptions = append(p.AspectOptions, AspectOption{
			Value:    string(ratio),
			Selected: ratio == state.Form.AspectRatio,
		})
	}

	if p.Endpoint == "" {
		p.Endpoint = MissingEndpointText
		p.EndpointMissing = true
	}
	if state.Loading {
		p.SubmitLabel = BusySubmitLabel
	}
	if state.Error != nil {
		p.Error = *state.Error
		p.HasError = true
	}

	if state.Response != nil {
		p.HasResponse = true
		p.RawJSON = state.Response.Pretty()
		for i, clip := range state.Response.Clips() {
			copied := state.CopiedIndex != nil && *state.CopiedIndex == i
			label := CopyLabel
			if copied {
				label = CopiedLabel
			}
			p.Cards = append(p.Cards, Card{
				Index:     i,
				Link:      clip.Link(),
				Caption:   clip.CaptionText(),
				CopyLabel: label,
				Copied:    copied,
			})
		}
		p.NoClips = len(p.Cards) == 0
	}

	p.ShowPlaceholder = !p.HasError && !p.HasResponse
	return p
}

// Fragments are the parts of the page that change after the first render
type Fragments struct {
	Endpoint    string `json:"endpoint"`
	Loading     bool   `json:"loading"`
	SubmitLabel string `json:"submitLabel"`
	Results     string `json:"results"`
}

// Render executes the named template with page
func Render(w io.Writer, name string, page Page) error {
	if err := templates.ExecuteTemplate(w, name, page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// RenderFragments renders the dynamic parts of page for streaming
func RenderFragments(page Page) (Fragments, error) {
	var results bytes.Buffer
	if err := Render(&results, "results", page); err != nil {
		return Fragments{}, err
	}
	return Fragments{
		Endpoint:    page.Endpoint,
		Loading:     page.Loading,
		SubmitLabel: page.SubmitLabel,
		Results:     results.String(),
	}, nil
}
