package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/onegreenvn/repurposer-ui/internal/services"
)

func mustDoc(t *testing.T, body string) *models.Document {
	t.Helper()
	doc, err := models.ParseDocument([]byte(body))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

func render(t *testing.T, name string, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, name, page); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func baseState() services.UIState {
	return services.UIState{
		Form:     models.DefaultFormInput(),
		Endpoint: "https://h.example.com/webhook-test/clips",
	}
}

func TestInitialPage(t *testing.T) {
	page := BuildPage(baseState(), "")
	if !page.ShowPlaceholder || page.HasError || page.HasResponse {
		t.Errorf("page = %+v", page)
	}

	html := render(t, PageTemplate, page)
	for _, want := range []string{
		PlaceholderText,
		`id="endpoint">https://h.example.com/webhook-test/clips<`,
		`>Submit</button>`,
		`value="60"`,
		`<option value="9:16" selected>`,
		`name="removeFillerWords" value="true" checked`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, `type="submit" disabled`) {
		t.Error("submit disabled while idle")
	}
}

func TestMissingEndpoint(t *testing.T) {
	state := baseState()
	state.Endpoint = ""
	page := BuildPage(state, "")
	if page.Endpoint != MissingEndpointText || !page.EndpointMissing {
		t.Errorf("endpoint = %q", page.Endpoint)
	}
}

func TestLoadingButton(t *testing.T) {
	state := baseState()
	state.Loading = true
	html := render(t, "button", BuildPage(state, ""))
	if !strings.Contains(html, `type="submit" disabled`) || !strings.Contains(html, BusySubmitLabel) {
		t.Errorf("button = %s", html)
	}
}

func TestClipCards(t *testing.T) {
	state := baseState()
	state.Response = mustDoc(t, `{"clips":[{"url":"https://x/1","caption":"Hi"},{"file":"https://x/2.mp4"}]}`)
	copied := 1
	state.CopiedIndex = &copied

	page := BuildPage(state, "/ui")
	if len(page.Cards) != 2 || page.NoClips || page.ShowPlaceholder {
		t.Fatalf("page = %+v", page)
	}
	if page.Cards[0].Link != "https://x/1" || page.Cards[0].Caption != "Hi" || page.Cards[0].CopyLabel != CopyLabel {
		t.Errorf("card 0 = %+v", page.Cards[0])
	}
	if page.Cards[1].CopyLabel != CopiedLabel || !page.Cards[1].Copied {
		t.Errorf("card 1 = %+v", page.Cards[1])
	}

	html := render(t, "results", page)
	for _, want := range []string{
		`href="https://x/1" target="_blank" rel="noreferrer noopener"`,
		`>Hi</div>`,
		`<i class="muted">No caption</i>`,
		`action="/ui/clips/1/copy"`,
		`>Copied</button>`,
		`/ui/api/v1/clips/export`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("results missing %q", want)
		}
	}
	if strings.Contains(html, NoClipsText) {
		t.Error("no-clips placeholder shown next to cards")
	}
	if strings.Count(html, `class="clip-card"`) != 2 {
		t.Errorf("want 2 cards")
	}
}

func TestNoClips(t *testing.T) {
	for _, body := range []string{`{"clips":[]}`, `{"status":"queued"}`} {
		state := baseState()
		state.Response = mustDoc(t, body)
		html := render(t, "results", BuildPage(state, ""))

		if strings.Count(html, NoClipsText) != 1 {
			t.Errorf("%s: want exactly one no-clips placeholder", body)
		}
		if strings.Contains(html, `class="clip-card"`) {
			t.Errorf("%s: cards rendered", body)
		}
		if strings.Contains(html, PlaceholderText) {
			t.Errorf("%s: initial placeholder rendered", body)
		}
	}
}

func TestErrorAndResponseTogether(t *testing.T) {
	state := baseState()
	msg := "Request failed (404): Not Found"
	state.Error = &msg
	state.Response = mustDoc(t, `{"message":"not active"}`)

	html := render(t, "results", BuildPage(state, ""))
	if !strings.Contains(html, `role="alert">Request failed (404): Not Found<`) {
		t.Error("error not rendered")
	}
	if !strings.Contains(html, `results with-error`) || !strings.Contains(html, "not active") {
		t.Error("response panels not rendered with the error")
	}
}

func TestErrorOnly(t *testing.T) {
	state := baseState()
	msg := "Request failed (500): Internal Server Error"
	state.Error = &msg

	html := render(t, "results", BuildPage(state, ""))
	if !strings.Contains(html, "500") {
		t.Error("status code missing from error")
	}
	if strings.Contains(html, `aria-label="Raw JSON"`) || strings.Contains(html, PlaceholderText) {
		t.Error("panels or placeholder rendered with an error only")
	}
}

func TestRawJSONIsEscaped(t *testing.T) {
	state := baseState()
	state.Response = mustDoc(t, `{"note":"<script>alert(1)</script>","clips":[{"url":"javascript:alert(1)","caption":"<b>x</b>"}]}`)

	html := render(t, "results", BuildPage(state, ""))
	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>x</b>") {
		t.Error("response content not escaped")
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Error("unsafe link rendered")
	}
}

func TestRenderFragments(t *testing.T) {
	state := baseState()
	state.Loading = true
	fragments, err := RenderFragments(BuildPage(state, ""))
	if err != nil {
		t.Fatalf("RenderFragments: %v", err)
	}
	if !fragments.Loading || fragments.SubmitLabel != BusySubmitLabel {
		t.Errorf("fragments = %+v", fragments)
	}
	if !strings.Contains(fragments.Results, PlaceholderText) {
		t.Errorf("results = %s", fragments.Results)
	}
}
