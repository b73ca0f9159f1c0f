package config

import "testing"

func TestHasProvider(t *testing.T) {
	cfg := &Config{AnthropicAPIKey: "sk-test", OpenAIAPIKey: ""}

	tests := []struct {
		provider string
		want     bool
	}{
		{"anthropic", true},
		{"openai", false},
		{"google", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := cfg.HasProvider(tt.provider); got != tt.want {
			t.Errorf("HasProvider(%s) = %v, want %v", tt.provider, got, tt.want)
		}
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TASKROUTER_TEST_VAR", "from-env")

	if got := getEnvOrDefault("TASKROUTER_TEST_VAR", "fallback"); got != "from-env" {
		t.Errorf("got %q, want from-env", got)
	}
	if got := getEnvOrDefault("TASKROUTER_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}
