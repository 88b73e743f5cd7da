package storage

import (
	"strings"
	"testing"
)

func TestPortraitKeyShape(t *testing.T) {
	key := portraitKey("png")
	if !strings.HasPrefix(key, "characters/") {
		t.Fatalf("expected characters/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("expected .png suffix, got %q", key)
	}
	if parts := strings.Split(key, "/"); len(parts) != 4 {
		t.Fatalf("expected characters/year/month/name, got %q", key)
	}
}

func TestPortraitKeyDotExtension(t *testing.T) {
	key := portraitKey(".jpg")
	if strings.Contains(key, "..jpg") {
		t.Fatalf("double dot in key %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %q", key)
	}
}

func TestPublicURLPrefersConfiguredBase(t *testing.T) {
	store := &PortraitStore{cfg: Config{
		PublicURL: "https://cdn.example.com/portraits/",
		Endpoint:  "http://minio:9000",
		Bucket:    "anicat",
	}}

	url := store.publicURL("characters/2026/08/abc.png")
	if url != "https://cdn.example.com/portraits/characters/2026/08/abc.png" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPublicURLFallsBackToEndpoint(t *testing.T) {
	store := &PortraitStore{cfg: Config{
		Endpoint: "http://minio:9000/",
		Bucket:   "anicat",
	}}

	url := store.publicURL("characters/2026/08/abc.png")
	if url != "http://minio:9000/anicat/characters/2026/08/abc.png" {
		t.Fatalf("unexpected url %q", url)
	}
}
