package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/sirupsen/logrus"
)

const unknownErrorMessage = "Unknown error"

var (
	// ErrWebhookNotConfigured is surfaced when no endpoint can be resolved
	ErrWebhookNotConfigured = errors.New("Webhook URL not configured. Check your .env values.")
	// ErrClipNotFound is returned when a copy targets a card that is not shown
	ErrClipNotFound = errors.New("clip not found")
)

// EndpointResolver resolves the webhook URL for the selected workflow
type EndpointResolver interface {
	Endpoint(useActive bool) string
}

// Sender delivers one request payload to the webhook
type Sender interface {
	Send(ctx context.Context, endpoint string, payload models.RequestPayload) (*WebhookResult, error)
}

// Copier writes text to a clipboard
type Copier interface {
	Copy(text string) bool
}

// UIState is everything the page renders from
type UIState struct {
	Form        models.FormInput `json:"form"`
	Endpoint    string           `json:"endpoint"`
	Loading     bool             `json:"loading"`
	Error       *string          `json:"error"`
	Response    *models.Document `json:"response"`
	CopiedIndex *int             `json:"copiedIndex"`
}

// Clips returns the clip list of the current response
func (s UIState) Clips() []models.Clip {
	return s.Response.Clips()
}

// FormController owns the UI state of one browser session. Every mutation is
// followed by a snapshot sent to the subscribers, which redraw from it.
type FormController struct {
	resolver     EndpointResolver
	sender       Sender
	copier       Copier
	copyFeedback time.Duration

	mu         sync.Mutex
	state      UIState
	copyTimer  *time.Timer
	copyGen    int
	lastActive time.Time
	listeners  map[int]func(UIState)
	nextID     int
}

// NewFormController creates a controller with the default form values
func NewFormController(resolver EndpointResolver, sender Sender, copier Copier, copyFeedback time.Duration) *FormController {
	form := models.DefaultFormInput()
	return &FormController{
		resolver:     resolver,
		sender:       sender,
		copier:       copier,
		copyFeedback: copyFeedback,
		state: UIState{
			Form:     form,
			Endpoint: resolver.Endpoint(form.UseActiveWorkflow),
		},
		lastActive: time.Now(),
		listeners:  make(map[int]func(UIState)),
	}
}

// State returns a snapshot of the current state
func (fc *FormController) State() UIState {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned func removes the subscription.
func (fc *FormController) Subscribe(fn func(UIState)) func() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	id := fc.nextID
	fc.nextID++
	fc.listeners[id] = fn
	return func() {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		delete(fc.listeners, id)
	}
}

// UpdateForm stores the edited form. The endpoint follows the workflow toggle.
func (fc *FormController) UpdateForm(in models.FormInput) {
	fc.mutate(func(s *UIState) {
		s.Form = in
		s.Endpoint = fc.resolver.Endpoint(in.UseActiveWorkflow)
	})
}

// Reject shows a message for input that could not be accepted
func (fc *FormController) Reject(message string) {
	fc.mutate(func(s *UIState) {
		s.Error = &message
		s.Response = nil
	})
}

// Submit sends the form to the webhook and waits for the outcome
func (fc *FormController) Submit(ctx context.Context, in models.FormInput) UIState {
	endpoint := fc.begin(in)
	fc.run(ctx, endpoint, in)
	return fc.State()
}

// SubmitAsync marks the request as pending and completes it in the
// background. Overlapping submissions are not coordinated: whichever finishes
// last decides the state.
func (fc *FormController) SubmitAsync(in models.FormInput) {
	endpoint := fc.begin(in)
	go fc.run(context.Background(), endpoint, in)
}

func (fc *FormController) begin(in models.FormInput) string {
	var endpoint string
	fc.mutate(func(s *UIState) {
		s.Form = in
		s.Endpoint = fc.resolver.Endpoint(in.UseActiveWorkflow)
		s.Loading = true
		s.Error = nil
		s.Response = nil
		endpoint = s.Endpoint
	})
	return endpoint
}

func (fc *FormController) run(ctx context.Context, endpoint string, in models.FormInput) {
	var (
		result *WebhookResult
		failed error
	)

	defer func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			logrus.Errorf("Submission panicked: %v", r)
			failed = fmt.Errorf("%v", r)
		}
		fc.finish(result, failed)
	}()

	if endpoint == "" {
		failed = ErrWebhookNotConfigured
		return
	}

	res, err := fc.sender.Send(ctx, endpoint, models.NewRequestPayload(in))
	if err != nil {
		sentry.CaptureException(err)
		failed = err
		return
	}
	result = res
}

func (fc *FormController) finish(result *WebhookResult, failed error) {
	fc.mutate(func(s *UIState) {
		s.Loading = false

		if failed != nil {
			msg := failed.Error()
			if msg == "" {
				msg = unknownErrorMessage
			}
			s.Error = &msg
			return
		}
		if result == nil {
			return
		}
		// a failed status and a parsed body are shown together
		if !result.OK {
			msg := fmt.Sprintf("Request failed (%d): %s", result.StatusCode, result.StatusText)
			s.Error = &msg
		}
		if result.Document != nil {
			s.Response = result.Document
		}
	})
}

// Copy puts caption on the clipboard. On success idx is marked as copied
// until the feedback delay passes; a newer copy restarts the delay.
func (fc *FormController) Copy(caption string, idx int) bool {
	if fc.copier == nil || !fc.copier.Copy(caption) {
		return false
	}

	fc.mutate(func(s *UIState) {
		s.CopiedIndex = &idx
		fc.copyGen++
		gen := fc.copyGen
		if fc.copyTimer != nil {
			fc.copyTimer.Stop()
		}
		fc.copyTimer = time.AfterFunc(fc.copyFeedback, func() { fc.clearCopied(gen) })
	})
	return true
}

// CopyClip copies the caption of the card at idx
func (fc *FormController) CopyClip(idx int) (bool, error) {
	clips := fc.State().Clips()
	if idx < 0 || idx >= len(clips) {
		return false, ErrClipNotFound
	}
	return fc.Copy(clips[idx].CaptionText(), idx), nil
}

func (fc *FormController) clearCopied(gen int) {
	fc.mu.Lock()
	if gen != fc.copyGen {
		fc.mu.Unlock()
		return
	}
	fc.mu.Unlock()

	fc.mutate(func(s *UIState) {
		if gen == fc.copyGen {
			s.CopiedIndex = nil
		}
	})
}

// IdleSince reports when the session last changed
func (fc *FormController) IdleSince() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.lastActive
}

// mutate applies fn under the lock, then notifies subscribers outside it
func (fc *FormController) mutate(fn func(s *UIState)) {
	fc.mu.Lock()
	fn(&fc.state)
	fc.lastActive = time.Now()
	snapshot := fc.snapshotLocked()
	listeners := make([]func(UIState), 0, len(fc.listeners))
	for _, l := range fc.listeners {
		listeners = append(listeners, l)
	}
	fc.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func (fc *FormController) snapshotLocked() UIState {
	s := fc.state
	if s.Error != nil {
		msg := *s.Error
		s.Error = &msg
	}
	if s.CopiedIndex != nil {
		idx := *s.CopiedIndex
		s.CopiedIndex = &idx
	}
	return s
}
