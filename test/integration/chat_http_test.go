//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/google/uuid"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler"
	infradb "github.com/westmead-kiosk/kiosk-apiserver/internal/infrastructure/database"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/infrastructure/llm"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/usecase"
	dbpkg "github.com/westmead-kiosk/kiosk-apiserver/pkg/database"
)

// envelope mirrors the API response wrapper.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type chatMessage struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

type chatData struct {
	Message         chatMessage `json:"message"`
	IsSchoolRelated bool        `json:"isSchoolRelated"`
}

// TestKioskChatHTTP exercises the chat pipeline end to end.
// Run with: make test-integration
// Requires: MySQL (localhost:3306) and a KIOSK_LLM_API_KEY for the model endpoint.
func TestKioskChatHTTP(t *testing.T) {
	apiKey := os.Getenv("KIOSK_LLM_API_KEY")
	if apiKey == "" {
		t.Skip("KIOSK_LLM_API_KEY not set, skipping integration test")
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			Port:               18080, // test port
			Mode:               "debug",
			ReadTimeout:        30 * time.Second,
			WriteTimeout:       30 * time.Second,
			MaxRequestBodySize: 4,
		},
		LLM: config.LLMConfig{
			BaseURL: getEnvOrDefault("KIOSK_LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			APIKey:  apiKey,
			Model:   getEnvOrDefault("KIOSK_LLM_MODEL", "llama-3.3-70b-versatile"),
			Timeout: 60 * time.Second,
		},
		Database: config.DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "127.0.0.1"),
			Port:            3306,
			User:            getEnvOrDefault("DB_USER", "kiosk"),
			Password:        getEnvOrDefault("DB_PASSWORD", "kiosk"),
			Database:        getEnvOrDefault("DB_NAME", "kiosk_test"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Kiosk: config.KioskConfig{BriefingMaxEntries: 20},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dbClient, err := dbpkg.NewClient(cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer dbpkg.Close(dbClient, logger)

	if err := dbClient.AutoMigrate(infradb.AllModels()...); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	// Wire the chat pipeline.
	llmClient := llm.NewClient(cfg.LLM, logger)
	chatRepo := infradb.NewChatRepository(dbClient)
	faqRepo := infradb.NewFaqRepository(dbClient)
	faqUC := usecase.NewFaqUsecase(faqRepo, logger)
	assembler := usecase.NewBriefingAssembler(
		infradb.NewReferenceRepository(dbClient),
		infradb.NewSettingsRepository(dbClient),
		cfg.Kiosk.BriefingMaxEntries,
		logger,
	)
	chatUC := usecase.NewChatUsecase(chatRepo, llmClient, assembler, faqUC, logger)
	chatHandler := handler.NewChatHandler(chatUC, faqUC, logger)

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithTransport(netpoll.NewTransporter),
	)

	v1 := h.Group("/api/v1")
	chat := v1.Group("/chat")
	chat.POST("", chatHandler.Chat)
	chat.GET("/history/:sessionId", chatHandler.History)
	chat.POST("/reset", chatHandler.Reset)
	v1.GET("/faqs", chatHandler.TopFaqs)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()

	// Wait for the server to come up.
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpClient := &http.Client{Timeout: 90 * time.Second}
	sessionID := uuid.New().String()

	t.Run("on-topic question gets an answer", func(t *testing.T) {
		reply := sendChat(t, httpClient, baseURL, sessionID, "What courses does Westmead International School offer?")

		if !reply.IsSchoolRelated {
			t.Error("expected a school question to be classified on-topic")
		}
		if reply.Message.Role != "assistant" {
			t.Errorf("expected role 'assistant', got %q", reply.Message.Role)
		}
		if reply.Message.Content == "" {
			t.Error("expected a non-empty answer")
		}
		t.Logf("answer: %.120q", reply.Message.Content)
	})

	t.Run("history returns both turns in order", func(t *testing.T) {
		resp, err := httpClient.Get(baseURL + "/api/v1/chat/history/" + sessionID)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		var history []chatMessage
		if err := json.Unmarshal(env.Data, &history); err != nil {
			t.Fatalf("failed to decode history: %v", err)
		}

		if len(history) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(history))
		}
		if history[0].Role != "user" || history[1].Role != "assistant" {
			t.Errorf("expected user then assistant, got %q then %q", history[0].Role, history[1].Role)
		}
	})

	t.Run("off-topic question is redirected", func(t *testing.T) {
		reply := sendChat(t, httpClient, baseURL, sessionID, "What is the capital of France?")

		if reply.IsSchoolRelated {
			t.Error("expected an unrelated question to be classified off-topic")
		}
		if reply.Message.Content == "" {
			t.Error("expected the redirect text")
		}
	})

	t.Run("tracked question appears in faqs", func(t *testing.T) {
		resp, err := httpClient.Get(baseURL + "/api/v1/faqs")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		var faqs []struct {
			Question string `json:"question"`
			Count    int    `json:"count"`
		}
		if err := json.Unmarshal(env.Data, &faqs); err != nil {
			t.Fatalf("failed to decode faqs: %v", err)
		}

		if len(faqs) == 0 {
			t.Fatal("expected at least one tracked question")
		}
	})

	t.Run("reset closes the session", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"sessionId": sessionID})
		resp, err := httpClient.Post(baseURL+"/api/v1/chat/reset", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
	})
}

// sendChat posts one question and decodes the reply.
func sendChat(t *testing.T, client *http.Client, baseURL, sessionID, message string) *chatData {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"sessionId": sessionID,
		"message":   message,
	})

	resp, err := client.Post(baseURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 200, got %d, body: %s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var reply chatData
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatalf("failed to decode chat data: %v", err)
	}

	return &reply
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
