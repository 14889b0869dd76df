package llmprovider_test

import (
	"testing"
	"time"

	"canvas-assistant/config"
	"canvas-assistant/pkg/llmprovider"
	"canvas-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that provider initialization
// and the manager work together from a loaded LLM config.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "test-deepseek-key", Model: "deepseek-chat", Timeout: "30s"},
			{Name: "qwen", Enabled: false, Priority: 0, APIKey: "test-qwen-key", Model: "qwen-plus"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "45s",
	}

	providers, errs := llmprovider.InitializeProviders(cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected init errors: %v", errs)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "deepseek" || providers[1].Name() != "gemini" {
		t.Errorf("providers not ordered by priority: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[0].Model() != "deepseek-chat" {
		t.Errorf("deepseek model = %s", providers[0].Model())
	}

	managerCfg, err := llmprovider.ManagerConfig(cfg)
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if managerCfg.RetryDelay != time.Second || managerCfg.MaxTotalTimeout != 45*time.Second {
		t.Errorf("durations = %v / %v", managerCfg.RetryDelay, managerCfg.MaxTotalTimeout)
	}

	logger := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console"})
	if llmprovider.NewManager(providers, managerCfg, logger) == nil {
		t.Fatal("manager should not be nil")
	}
}

func TestIntegration_InitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		providers []config.ProviderConfig
		wantCount int
		wantErrs  int
	}{
		{
			name: "openai compatible presets",
			providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Model: "gpt-4o-mini"},
				{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k", Model: "qwen-plus"},
			},
			wantCount: 2,
		},
		{
			name:     "no providers",
			wantErrs: 1,
		},
		{
			name: "unresolved api key is skipped",
			providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "${GEMINI_API_KEY}", Model: "gemini-2.5-flash"},
				{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
			},
			wantCount: 1,
			wantErrs:  1,
		},
		{
			name: "unknown provider",
			providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			},
			wantErrs: 2,
		},
		{
			name: "bad timeout",
			providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash", Timeout: "soon"},
			},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, errs := llmprovider.InitializeProviders(&config.LLMConfig{Providers: tt.providers})
			if len(providers) != tt.wantCount {
				t.Errorf("providers = %d, want %d", len(providers), tt.wantCount)
			}
			if len(errs) != tt.wantErrs {
				t.Errorf("errors = %d (%v), want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestManagerConfig_InvalidDuration(t *testing.T) {
	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{RetryDelay: "later"}); err == nil {
		t.Error("expected error for invalid retry delay")
	}
}
