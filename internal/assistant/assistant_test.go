package assistant

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marcelomendesnai/medpet/internal/models"
)

func testMeds() []models.Medication {
	return []models.Medication{
		{Name: "GAVIZ 10MG", Dosage: "1/2 comprimido", FrequencyHours: 24},
		{Name: "AGEMOXI 250MG", Dosage: "1/2 comprimido", FrequencyHours: 12},
	}
}

func TestAsk_ReturnsModelAnswer(t *testing.T) {
	var gotPath string
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Tome com água."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", WithBaseURL(server.URL), WithModel("test-model"))
	answer := client.Ask(context.Background(), "Como tomar?", testMeds())

	if answer != "Tome com água." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if !strings.Contains(gotPath, "test-model") {
		t.Errorf("expected model in request path, got %s", gotPath)
	}
	if !strings.Contains(gotBody, "GAVIZ 10MG") || !strings.Contains(gotBody, "Como tomar?") {
		t.Errorf("prompt must embed medications and the question, got %s", gotBody)
	}
}

func TestAsk_ServerErrorDegradesToApology(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", WithBaseURL(server.URL))
	if answer := client.Ask(context.Background(), "Oi", nil); answer != Apology {
		t.Errorf("expected the apology string, got %q", answer)
	}
}

func TestAsk_UnreachableServiceDegradesToApology(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewGeminiClient("test-key", WithBaseURL(server.URL))
	if answer := client.Ask(context.Background(), "Oi", nil); answer != Apology {
		t.Errorf("expected the apology string, got %q", answer)
	}
}

func TestAsk_MalformedResponseDegradesToApology(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", WithBaseURL(server.URL))
	if answer := client.Ask(context.Background(), "Oi", nil); answer != Apology {
		t.Errorf("expected the apology string, got %q", answer)
	}
}

func TestAsk_EmptyAnswerGetsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", WithBaseURL(server.URL))
	answer := client.Ask(context.Background(), "Oi", nil)
	if answer == Apology || answer == "" {
		t.Errorf("expected the empty-answer fallback, got %q", answer)
	}
}

func TestBuildPrompt_MentionsSkipRule(t *testing.T) {
	prompt := buildPrompt("Posso pular?", testMeds())
	if !strings.Contains(prompt, "NÃO aumenta o contador") {
		t.Error("prompt must explain that skipping does not advance progress")
	}
	if !strings.Contains(prompt, "AGEMOXI 250MG: 1/2 comprimido, 12h") {
		t.Errorf("prompt must list medications with dosage and frequency:\n%s", prompt)
	}
}
