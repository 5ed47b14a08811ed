// Package controller drives a chat session against the wine recommender
// API. It owns the transcript, the quick-reply option set, and the
// single-flight request gate, and draws through a Renderer so that both
// the TUI and the plain console front ends share one behavior.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/Raeus1901/wine-bot/internal/cli/types"
)

// Mode selects which server API shape the controller speaks.
type Mode string

const (
	// ModeConversation uses the structured POST /conversation endpoint.
	ModeConversation Mode = "conversation"
	// ModeWizard uses the question/answer endpoints and pulls quick
	// replies out of the message text.
	ModeWizard Mode = "wizard"
)

// Transcript line senders.
const (
	SenderAI     = "AI"
	SenderYou    = "You"
	SenderSystem = "System"
)

// Messages shown when the server cannot be reached. The wizard and the
// structured API historically used different wording; both are kept.
const (
	wizardConnectError = "Unable to connect to server."
	chatConnectError   = "Error connecting to server."
	resetFallback      = "Session reset."
)

// Message is one transcript line.
type Message struct {
	Sender string
	Text   string
}

// Renderer is the surface the controller draws on. Implementations must
// tolerate calls from the goroutine running the active operation.
type Renderer interface {
	// AppendMessage adds one line to the visible transcript.
	AppendMessage(sender, text string)
	// SetOptions replaces the visible quick-reply set wholesale. A nil
	// or empty slice clears it.
	SetOptions(options []string)
	// ClearTranscript removes every visible line.
	ClearTranscript()
	// ClearInput empties the free-text input field.
	ClearInput()
	// SetBusy disables or re-enables the input controls while a
	// request is in flight.
	SetBusy(busy bool)
}

// Transport performs the HTTP calls on behalf of the controller.
// *client.APIClient satisfies it.
type Transport interface {
	Converse(ctx context.Context, message string) (*types.ConversationResponse, error)
	NextQuestion(ctx context.Context) (*types.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, answer string) (*types.AnswerResponse, error)
	Reset(ctx context.Context) (*types.ResetResponse, error)
}

type gateState int

const (
	gateIdle gateState = iota
	gateBusy
)

// Controller mediates between the user-facing surface and the server.
type Controller struct {
	mode      Mode
	transport Transport
	renderer  Renderer
	logger    *slog.Logger

	mu         sync.Mutex
	gate       gateState
	transcript []Message
}

// New creates a controller. A nil logger falls back to slog.Default.
func New(mode Mode, transport Transport, renderer Renderer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		mode:      mode,
		transport: transport,
		renderer:  renderer,
		logger:    logger,
	}
}

// Mode reports which API shape the controller speaks.
func (c *Controller) Mode() Mode { return c.mode }

// Transcript returns a copy of the transcript so far.
func (c *Controller) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Start opens the session. In wizard mode it fetches the first question;
// in conversation mode the server speaks only when spoken to, so there is
// nothing to do.
func (c *Controller) Start(ctx context.Context) {
	if c.mode == ModeWizard {
		c.fetchNextQuestion(ctx)
	}
}

// Submit sends user text to the server. The text is echoed as a "You"
// line first; if a request is already in flight the network call is
// dropped silently.
func (c *Controller) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.renderer.ClearInput()
	c.append(SenderYou, text)

	if c.mode == ModeWizard {
		c.submitAnswer(ctx, text)
	} else {
		c.sendMessage(ctx, text)
	}
}

// SelectOption submits a quick-reply option. Clicking an option behaves
// exactly like typing its label and submitting it.
func (c *Controller) SelectOption(ctx context.Context, option string) {
	c.Submit(ctx, option)
}

// Reset starts the session over. In conversation mode "reset" is an
// ordinary message the server recognizes. In wizard mode the reset
// endpoint is called, the visible state is wiped, and the first question
// is fetched again.
func (c *Controller) Reset(ctx context.Context) {
	if c.mode == ModeConversation {
		c.Submit(ctx, "reset")
		return
	}

	if !c.acquire() {
		return
	}
	resp, err := func() (*types.ResetResponse, error) {
		defer c.release()
		return c.transport.Reset(ctx)
	}()

	if err != nil {
		c.logger.Warn("reset request failed", "error", err)
		c.append(SenderSystem, wizardConnectError)
		return
	}

	c.mu.Lock()
	c.transcript = nil
	c.mu.Unlock()
	c.renderer.ClearTranscript()
	c.renderer.SetOptions(nil)
	c.renderer.ClearInput()

	msg := resp.Message
	if msg == "" {
		msg = resetFallback
	}
	c.append(SenderSystem, msg)

	c.fetchNextQuestion(ctx)
}

// sendMessage is the conversation-mode request path.
func (c *Controller) sendMessage(ctx context.Context, text string) {
	if !c.acquire() {
		return
	}
	resp, err := func() (*types.ConversationResponse, error) {
		defer c.release()
		return c.transport.Converse(ctx, text)
	}()

	if err != nil {
		c.logger.Warn("conversation request failed", "error", err)
		c.append(SenderSystem, chatConnectError)
		return
	}
	if resp.Error != "" {
		c.append(SenderSystem, resp.Error)
		return
	}

	c.append(SenderAI, resp.Message)
	c.renderer.SetOptions(resp.Options)
}

// submitAnswer is the wizard-mode request path. Unless the wizard is
// done, the next question is fetched right after the answer is
// acknowledged, so the user never has to ask for it.
func (c *Controller) submitAnswer(ctx context.Context, answer string) {
	if !c.acquire() {
		return
	}
	resp, err := func() (*types.AnswerResponse, error) {
		defer c.release()
		return c.transport.SubmitAnswer(ctx, answer)
	}()

	if err != nil {
		c.logger.Warn("answer request failed", "error", err)
		c.append(SenderSystem, wizardConnectError)
		return
	}
	if resp.Error != "" {
		c.append(SenderSystem, resp.Error)
		return
	}

	c.append(SenderAI, resp.Message)
	c.renderer.SetOptions(ExtractOptions(resp.Message))

	if !resp.Done {
		c.fetchNextQuestion(ctx)
	}
}

func (c *Controller) fetchNextQuestion(ctx context.Context) {
	if !c.acquire() {
		return
	}
	resp, err := func() (*types.QuestionResponse, error) {
		defer c.release()
		return c.transport.NextQuestion(ctx)
	}()

	if err != nil {
		c.logger.Warn("next question request failed", "error", err)
		c.append(SenderSystem, wizardConnectError)
		return
	}
	if resp.Error != "" {
		c.append(SenderSystem, resp.Error)
		return
	}

	c.append(SenderAI, resp.Message)
	c.renderer.SetOptions(ExtractOptions(resp.Message))
}

// acquire claims the request gate. It returns false when another request
// is already in flight, in which case the caller must drop the call.
func (c *Controller) acquire() bool {
	c.mu.Lock()
	if c.gate == gateBusy {
		c.mu.Unlock()
		return false
	}
	c.gate = gateBusy
	c.mu.Unlock()

	c.renderer.SetBusy(true)
	return true
}

// release frees the gate and re-enables input. Called as soon as the
// network call returns so that a follow-up request (the wizard's chained
// next-question fetch) can claim the gate.
func (c *Controller) release() {
	c.mu.Lock()
	c.gate = gateIdle
	c.mu.Unlock()

	c.renderer.SetBusy(false)
}

func (c *Controller) append(sender, text string) {
	c.mu.Lock()
	c.transcript = append(c.transcript, Message{Sender: sender, Text: text})
	c.mu.Unlock()

	c.renderer.AppendMessage(sender, text)
}
