package scaffolder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/EmanuelTinoco/backstage/internal/discovery"
	"github.com/EmanuelTinoco/backstage/internal/identity"
)

// newTestClient points a client at a test server's URL.
func newTestClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(server.Client())}, opts...)
	client, err := New(discovery.Static{PluginID: server.URL}, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestScaffold(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}

		var body struct {
			TemplateName string                 `json:"templateName"`
			Values       map[string]interface{} `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if body.TemplateName != "react-plugin" {
			t.Errorf("templateName = %q, want react-plugin", body.TemplateName)
		}
		if body.Values["componentName"] != "my-component" {
			t.Errorf("values = %v, want componentName=my-component", body.Values)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	taskID, err := client.Scaffold(context.Background(), "react-plugin", map[string]interface{}{
		"componentName": "my-component",
	})
	if err != nil {
		t.Fatalf("Scaffold failed: %v", err)
	}
	if taskID != "abc" {
		t.Errorf("taskID = %q, want abc", taskID)
	}
}

func TestScaffold_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("template store unavailable\n"))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.Scaffold(context.Background(), "react-plugin", nil)
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention the status code", err)
	}

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error is %T, want *ResponseError", err)
	}
	if respErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", respErr.StatusCode)
	}
	if respErr.Body != "template store unavailable" {
		t.Errorf("Body = %q, want the trimmed response body", respErr.Body)
	}
}

func TestGetTask(t *testing.T) {
	created := time.Date(2021, 3, 15, 9, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v2/tasks/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Task{
			ID:        "abc",
			Status:    StatusProcessing,
			CreatedAt: created,
			Spec: TaskSpec{
				TemplateName: "react-plugin",
				Values:       map[string]interface{}{"componentName": "my-component"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	task, err := client.GetTask(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.ID != "abc" || task.Status != StatusProcessing {
		t.Errorf("task = %+v, want id=abc status=processing", task)
	}
	if task.Spec.TemplateName != "react-plugin" {
		t.Errorf("templateName = %q, want react-plugin", task.Spec.TemplateName)
	}
	if !task.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", task.CreatedAt, created)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such task", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetTask(context.Background(), "missing")
	var respErr *ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode != http.StatusNotFound {
		t.Fatalf("err = %v, want *ResponseError with status 404", err)
	}
}

func TestBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Task{ID: "abc"})
	}))
	defer server.Close()

	client := newTestClient(t, server, WithTokenProvider(identity.StaticToken("sekrit")))
	if _, err := client.GetTask(context.Background(), "abc"); err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want Bearer sekrit", gotAuth)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Task{ID: "abc"})
	}))
	defer server.Close()

	client := newTestClient(t, server, WithTokenProvider(identity.StaticToken("")))
	if _, err := client.GetTask(context.Background(), "abc"); err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want no header without a token", gotAuth)
	}
}

func TestTaskStatusTerminal(t *testing.T) {
	terminal := []TaskStatus{StatusCompleted, StatusFailed, StatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
	for _, s := range []TaskStatus{StatusOpen, StatusProcessing} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
}
