package docs

import (
	"encoding/json"
	"testing"
)

func TestGeneratedSpecCoversRoutes(t *testing.T) {
	var spec struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &spec); err != nil {
		t.Fatalf("spec is not valid JSON: %v", err)
	}

	if len(spec.Paths) == 0 {
		t.Fatal("spec has no paths")
	}
	for _, route := range []string{
		"/api/register",
		"/api/login",
		"/api/animes",
		"/api/animes/{id}",
		"/api/characters",
		"/api/characters/{id}/image",
		"/healthz",
	} {
		if _, ok := spec.Paths[route]; !ok {
			t.Errorf("spec is missing path %s", route)
		}
	}

	for _, def := range []string{
		"http.ErrorResponse",
		"http.TokenResponse",
		"http.AnimeResponse",
		"http.CharacterPageResponse",
	} {
		if _, ok := spec.Definitions[def]; !ok {
			t.Errorf("spec is missing definition %s", def)
		}
	}
}
