package models

import "strings"

// AspectRatio is the output frame shape requested from the workflow
type AspectRatio string

const (
	AspectPortrait  AspectRatio = "9:16"
	AspectLandscape AspectRatio = "16:9"
	AspectSquare    AspectRatio = "1:1"
)

// AspectRatios lists the ratios offered by the form, in display order
var AspectRatios = []AspectRatio{AspectPortrait, AspectLandscape, AspectSquare}

const (
	MinClipLengthSeconds     = 10
	MaxClipLengthSeconds     = 180
	ClipLengthStepSeconds    = 5
	DefaultClipLengthSeconds = 60
)

// FormInput is what the user typed into the form. It lives for the whole
// browser session and is never reset automatically.
type FormInput struct {
	SourceURL            string      `json:"sourceUrl" form:"sourceUrl" binding:"required" example:"https://www.youtube.com/watch?v=abc"`
	MaxClipLengthSeconds int         `json:"maxClipLengthSeconds" form:"maxClipLengthSeconds" binding:"required,min=10,max=180" example:"60"`
	AspectRatio          AspectRatio `json:"aspectRatio" form:"aspectRatio" binding:"required,oneof=9:16 16:9 1:1" example:"9:16"`
	RemoveFillerWords    bool        `json:"removeFillerWords" form:"removeFillerWords" example:"true"`
	UseActiveWorkflow    bool        `json:"useActiveWorkflow" form:"useActiveWorkflow" example:"false"`
}

// DefaultFormInput returns the values shown on first load
func DefaultFormInput() FormInput {
	return FormInput{
		MaxClipLengthSeconds: DefaultClipLengthSeconds,
		AspectRatio:          AspectPortrait,
		RemoveFillerWords:    true,
	}
}

// RequestPayload is the JSON body posted to the webhook
type RequestPayload struct {
	SourceURL            string  `json:"sourceUrl"`
	MaxClipLengthSeconds float64 `json:"maxClipLengthSeconds"`
	AspectRatio          string  `json:"aspectRatio"`
	RemoveFillerWords    bool    `json:"removeFillerWords"`
}

// NewRequestPayload builds a fresh payload for one submission
func NewRequestPayload(in FormInput) RequestPayload {
	return RequestPayload{
		SourceURL:            strings.TrimSpace(in.SourceURL),
		MaxClipLengthSeconds: float64(in.MaxClipLengthSeconds),
		AspectRatio:          string(in.AspectRatio),
		RemoveFillerWords:    in.RemoveFillerWords,
	}
}

// FormDraft is the form as it is being edited. It carries no validation so
// half-filled forms can still be remembered.
type FormDraft struct {
	SourceURL            string `form:"sourceUrl"`
	MaxClipLengthSeconds int    `form:"maxClipLengthSeconds"`
	AspectRatio          string `form:"aspectRatio"`
	RemoveFillerWords    bool   `form:"removeFillerWords"`
	UseActiveWorkflow    bool   `form:"useActiveWorkflow"`
}

// Input converts the draft into a FormInput
func (d FormDraft) Input() FormInput {
	return FormInput{
		SourceURL:            d.SourceURL,
		MaxClipLengthSeconds: d.MaxClipLengthSeconds,
		AspectRatio:          AspectRatio(d.AspectRatio),
		RemoveFillerWords:    d.RemoveFillerWords,
		UseActiveWorkflow:    d.UseActiveWorkflow,
	}
}
