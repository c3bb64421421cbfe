package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantObj   bool
		wantClips int
	}{
		{name: "clips", body: `{"clips":[{"url":"https://x/1","caption":"Hi"}]}`, wantObj: true, wantClips: 1},
		{name: "empty body", body: "", wantObj: true},
		{name: "whitespace body", body: "  \n", wantObj: true},
		{name: "no clips key", body: `{"status":"ok"}`, wantObj: true},
		{name: "clips null", body: `{"clips":null}`, wantObj: true},
		{name: "clips wrong type", body: `{"clips":"nope"}`, wantObj: true},
		{name: "array body", body: `[1,2]`, wantObj: false},
		{name: "html body", body: "<html>oops</html>", wantErr: true},
		{name: "truncated", body: `{"clips":[`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.body))
			if tt.wantErr {
				if !errors.Is(err, ErrNotJSON) {
					t.Fatalf("err = %v, want ErrNotJSON", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if doc.IsObject() != tt.wantObj {
				t.Errorf("IsObject = %v, want %v", doc.IsObject(), tt.wantObj)
			}
			if got := len(doc.Clips()); got != tt.wantClips {
				t.Errorf("len(Clips) = %d, want %d", got, tt.wantClips)
			}
		})
	}
}

func TestDocumentKeepsKeyOrder(t *testing.T) {
	body := `{"zeta":1,"alpha":{"b":2,"a":1},"clips":[],"mid":"x"}`
	doc, err := ParseDocument([]byte(body))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	var keys []string
	for _, f := range doc.Fields() {
		keys = append(keys, f.Key)
	}
	if got := strings.Join(keys, ","); got != "zeta,alpha,clips,mid" {
		t.Errorf("keys = %s", got)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != body {
		t.Errorf("Marshal = %s, want %s", out, body)
	}

	want := "{\n  \"zeta\": 1,\n  \"alpha\": {\n    \"b\": 2,\n    \"a\": 1\n  },\n  \"clips\": [],\n  \"mid\": \"x\"\n}"
	if got := doc.Pretty(); got != want {
		t.Errorf("Pretty =\n%s\nwant\n%s", got, want)
	}
}

func TestDocumentDuplicateKeys(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Fields()) != 2 {
		t.Fatalf("got %d fields, want 2", len(doc.Fields()))
	}
	v, _ := doc.Get("a")
	if string(v) != "3" {
		t.Errorf("a = %s, want 3", v)
	}
}

func TestDocumentClipsTolerant(t *testing.T) {
	body := `{"clips":[
		{"file":"f.mp4","videoUrl":"v","url":"u","caption":"c","text":"t"},
		{"videoUrl":"v","text":"t"},
		{"url":42,"caption":["x"]},
		"not an object",
		{}
	]}`
	doc, err := ParseDocument([]byte(body))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	clips := doc.Clips()
	if len(clips) != 5 {
		t.Fatalf("got %d clips, want 5", len(clips))
	}

	wantLinks := []string{"f.mp4", "v", ClipPlaceholderURL, ClipPlaceholderURL, ClipPlaceholderURL}
	wantCaptions := []string{"c", "t", "", "", ""}
	for i, c := range clips {
		if c.Link() != wantLinks[i] {
			t.Errorf("clip %d link = %q, want %q", i, c.Link(), wantLinks[i])
		}
		if c.CaptionText() != wantCaptions[i] {
			t.Errorf("clip %d caption = %q, want %q", i, c.CaptionText(), wantCaptions[i])
		}
	}
}

func TestNilDocument(t *testing.T) {
	var doc *Document
	if doc.Clips() != nil {
		t.Error("nil document should have no clips")
	}
	if doc.IsObject() {
		t.Error("nil document is not an object")
	}
}

func TestDocumentUnmarshal(t *testing.T) {
	var holder struct {
		Response *Document `json:"response"`
	}
	if err := json.Unmarshal([]byte(`{"response":{"b":1,"a":2}}`), &holder); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if holder.Response == nil || holder.Response.Fields()[0].Key != "b" {
		t.Errorf("response = %+v", holder.Response)
	}
}

func TestDocumentFalsy(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{body: "null", want: true},
		{body: "false", want: true},
		{body: "0", want: true},
		{body: "-0.0", want: true},
		{body: "0e3", want: true},
		{body: `""`, want: true},
		{body: "", want: false},
		{body: "{}", want: false},
		{body: "[]", want: false},
		{body: "true", want: false},
		{body: "1", want: false},
		{body: `"0"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.body))
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if got := doc.Falsy(); got != tt.want {
				t.Errorf("Falsy = %v, want %v", got, tt.want)
			}
		})
	}
	var nilDoc *Document
	if !nilDoc.Falsy() {
		t.Error("nil document should be falsy")
	}
}
