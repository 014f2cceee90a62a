package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"maxitask/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"title\":\"Buy milk\"}" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			GenerationConfig: &gemini.GenerationConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema: &gemini.Schema{
					Type: gemini.TypeObject,
					Properties: map[string]*gemini.Schema{
						"title": {Type: gemini.TypeString},
					},
					Required: []string{"title"},
				},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != `{"title":"Buy milk"}` {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Bad API Key", func(t *testing.T) {
		bad := gemini.NewClient("wrong-key")
		bad.SetAPIURL(ts.URL)

		_, err := bad.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 401 response")
		}
	})
}

func TestGenerateResponse_Text(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	if nilResp.Text() != "" {
		t.Errorf("nil response should yield empty text")
	}
	if (&gemini.GenerateResponse{}).Text() != "" {
		t.Errorf("empty response should yield empty text")
	}
}
