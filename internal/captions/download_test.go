package captions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("WEBVTT\n\ncaption body"))
	}))
	defer srv.Close()

	f := testFetcher()
	data, err := f.Download(context.Background(), &extractor.CaptionTrack{Ext: "vtt", URL: srv.URL})
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if string(data) != "WEBVTT\n\ncaption body" {
		t.Errorf("Download() = %q", data)
	}
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := testFetcher()
	if _, err := f.Download(context.Background(), &extractor.CaptionTrack{URL: srv.URL}); err == nil {
		t.Error("Download() should fail on non-200 status")
	}
}

func TestDownloadEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	f := testFetcher()
	if _, err := f.Download(context.Background(), &extractor.CaptionTrack{URL: srv.URL}); err == nil {
		t.Error("Download() should fail on empty response")
	}
}
