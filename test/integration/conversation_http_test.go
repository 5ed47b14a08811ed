//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/Raeus1901/wine-bot/internal/cli/client"
	"github.com/Raeus1901/wine-bot/internal/cli/controller"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
	"github.com/Raeus1901/wine-bot/internal/handler"
	"github.com/Raeus1901/wine-bot/internal/infrastructure/memory"
	"github.com/Raeus1901/wine-bot/internal/recommender"
	"github.com/Raeus1901/wine-bot/internal/router"
	"github.com/Raeus1901/wine-bot/internal/usecase"
)

const testAddr = "127.0.0.1:18081"

func startServer(t *testing.T) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	wines := []entity.Wine{
		{Winery: "Juan Gil", Name: "Silver Label", Vintage: "2021", Country: "Spain", Color: "Red", ABV: 14.5, PriceValue: 25, Rating: 4.3},
		{Winery: "La Giaretta", Name: "Valpolicella Classico", Vintage: "2022", Country: "Italy", Color: "Red", ABV: 12.5, PriceValue: 15, Rating: 4.0},
		{Winery: "Chateau de Malle", Name: "Sauternes", Vintage: "2015", Country: "France", Color: "White", ABV: 11.5, PriceValue: 35, Rating: 4.1},
	}

	engine := recommender.NewEngine(wines)
	sessionRepo := memory.NewSessionRepository(30 * time.Minute)
	conversationUC := usecase.NewConversationUsecase(engine, sessionRepo, logger)
	conversationHandler := handler.NewConversationHandler(conversationUC, logger)
	healthHandler := handler.NewHealthHandler(len(wines))

	h := server.New(
		server.WithHostPorts(testAddr),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, conversationHandler, healthHandler)

	go h.Spin()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
	})

	waitForReady(t)
}

func waitForReady(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", testAddr))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

type recordingRenderer struct {
	lines   []controller.Message
	options []string
}

func (r *recordingRenderer) AppendMessage(sender, text string) {
	r.lines = append(r.lines, controller.Message{Sender: sender, Text: text})
}
func (r *recordingRenderer) SetOptions(options []string) { r.options = options }
func (r *recordingRenderer) ClearTranscript()            { r.lines = nil }
func (r *recordingRenderer) ClearInput()                 {}
func (r *recordingRenderer) SetBusy(busy bool)           {}

func TestConversationFlowOverHTTP(t *testing.T) {
	startServer(t)
	ctx := context.Background()

	apiClient, err := client.NewAPIClient("http://"+testAddr, fmt.Sprintf("it-conv-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("NewAPIClient() error = %v", err)
	}

	rend := &recordingRenderer{}
	ctrl := controller.New(controller.ModeConversation, apiClient, rend, nil)

	ctrl.Submit(ctx, "hello")
	if len(rend.options) == 0 {
		t.Fatalf("first question carried no options; transcript: %v", rend.lines)
	}

	// Answer every question by clicking the first quick reply.
	for rounds := 0; len(rend.options) > 0 && rounds < 10; rounds++ {
		ctrl.SelectOption(ctx, rend.options[0])
	}

	last := rend.lines[len(rend.lines)-1]
	if last.Sender != controller.SenderAI {
		t.Fatalf("session ended on %q line: %q", last.Sender, last.Text)
	}
	if !strings.Contains(last.Text, "recommend") && !strings.Contains(last.Text, "No wines matched") {
		t.Errorf("final message is neither a recommendation nor a no-match reply: %q", last.Text)
	}
}

func TestWizardFlowOverHTTP(t *testing.T) {
	startServer(t)
	ctx := context.Background()

	apiClient, err := client.NewAPIClient("http://"+testAddr, fmt.Sprintf("it-wiz-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("NewAPIClient() error = %v", err)
	}

	rend := &recordingRenderer{}
	ctrl := controller.New(controller.ModeWizard, apiClient, rend, nil)

	ctrl.Start(ctx)
	if len(rend.options) == 0 {
		t.Fatalf("first wizard question carried no extractable options; transcript: %v", rend.lines)
	}

	for rounds := 0; len(rend.options) > 0 && rounds < 10; rounds++ {
		ctrl.SelectOption(ctx, rend.options[0])
	}

	last := rend.lines[len(rend.lines)-1]
	if last.Sender != controller.SenderAI {
		t.Fatalf("wizard ended on %q line: %q", last.Sender, last.Text)
	}

	// Reset wipes the transcript and refetches the first question.
	ctrl.Reset(ctx)
	if len(rend.lines) < 2 {
		t.Fatalf("transcript after reset = %v, want confirmation plus first question", rend.lines)
	}
	if rend.lines[0].Sender != controller.SenderSystem {
		t.Errorf("first line after reset = %+v, want System confirmation", rend.lines[0])
	}
	if len(rend.options) == 0 {
		t.Error("no options after reset, want the first question's set")
	}
}
