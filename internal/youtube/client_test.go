package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchPayload = `{
	"items": [
		{
			"id": {"videoId": "abc123"},
			"snippet": {
				"title": "Morning routine",
				"channelTitle": "GlamDaily",
				"thumbnails": {"medium": {"url": "https://img.example.com/abc123.jpg"}}
			}
		},
		{
			"id": {},
			"snippet": {
				"title": "Playlist result without video id",
				"channelTitle": "SomeChannel",
				"thumbnails": {"medium": {"url": "https://img.example.com/x.jpg"}}
			}
		}
	]
}`

func TestSearchMapsPayload(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	items, err := client.Search(context.Background(), "Beauty", 5, "US")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 raw items, got %d", len(items))
	}
	if items[0].Title != "Morning routine" || items[0].Channel != "GlamDaily" || items[0].VideoID != "abc123" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	// Partial records pass through untouched; the ranker drops them.
	if items[1].VideoID != "" {
		t.Errorf("expected empty video id for partial record, got %q", items[1].VideoID)
	}

	for key, want := range map[string]string{
		"key":        "test-key",
		"q":          "Beauty",
		"part":       "snippet",
		"type":       "video",
		"maxResults": "5",
		"order":      "viewCount",
		"regionCode": "US",
	} {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != want {
			t.Errorf("query param %s = %v, want %q", key, gotQuery[key], want)
		}
	}
}

func TestSearchNonSuccessIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "quotaExceeded"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	if _, err := client.Search(context.Background(), "Tech", 5, "US"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestSearchRequiresAPIKey(t *testing.T) {
	client := NewClient("")
	if _, err := client.Search(context.Background(), "Tech", 5, "US"); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
