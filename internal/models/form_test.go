package models

import (
	"encoding/json"
	"testing"
)

func TestNewRequestPayload(t *testing.T) {
	in := FormInput{
		SourceURL:            "  https://example.com/watch?v=abc \n",
		MaxClipLengthSeconds: 60,
		AspectRatio:          AspectPortrait,
		RemoveFillerWords:    true,
		UseActiveWorkflow:    true,
	}

	payload := NewRequestPayload(in)
	if payload.SourceURL != "https://example.com/watch?v=abc" {
		t.Errorf("SourceURL = %q", payload.SourceURL)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"sourceUrl":"https://example.com/watch?v=abc","maxClipLengthSeconds":60,"aspectRatio":"9:16","removeFillerWords":true}`
	if string(out) != want {
		t.Errorf("payload = %s, want %s", out, want)
	}
}

func TestDefaultFormInput(t *testing.T) {
	in := DefaultFormInput()
	if in.MaxClipLengthSeconds != 60 || in.AspectRatio != AspectPortrait || !in.RemoveFillerWords || in.UseActiveWorkflow {
		t.Errorf("DefaultFormInput = %+v", in)
	}
}

func TestFormDraftInput(t *testing.T) {
	d := FormDraft{SourceURL: "u", MaxClipLengthSeconds: 30, AspectRatio: "1:1", UseActiveWorkflow: true}
	in := d.Input()
	if in.AspectRatio != AspectSquare || in.MaxClipLengthSeconds != 30 || !in.UseActiveWorkflow || in.RemoveFillerWords {
		t.Errorf("Input = %+v", in)
	}
}
