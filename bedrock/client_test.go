package bedrock

import "testing"

func TestFilterByProvider(t *testing.T) {
	models := []ModelSummary{
		{ID: "amazon.nova-lite-v1:0", Provider: "Amazon"},
		{ID: "anthropic.claude-3-5-sonnet-20241022-v2:0", Provider: "Anthropic"},
		{ID: "amazon.nova-canvas-v1:0", Provider: "Amazon"},
	}

	got := FilterByProvider(models, "amazon")
	if len(got) != 2 {
		t.Fatalf("expected 2 Amazon models, got %d", len(got))
	}
	for _, m := range got {
		if m.Provider != "Amazon" {
			t.Fatalf("unexpected provider in filtered list: %q", m.Provider)
		}
	}

	if got := FilterByProvider(models, ""); len(got) != 3 {
		t.Fatalf("empty filter should keep everything, got %d", len(got))
	}

	if got := FilterByProvider(models, "cohere"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
