package docs

import "testing"

func TestGet_KnownTopics(t *testing.T) {
	for _, topic := range All() {
		got, err := Get(topic.Name)
		if err != nil {
			t.Fatalf("Get(%q): %v", topic.Name, err)
		}
		if got.Content == "" {
			t.Fatalf("topic %q has no content", topic.Name)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}
