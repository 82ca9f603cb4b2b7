package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("MARKETLENS_SERVER_PORT")
		os.Unsetenv("MARKETLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("MARKETLENS_OPENAI_API_KEY")
		os.Unsetenv("MARKETLENS_OPENAI_BASE_URL")
		os.Unsetenv("MARKETLENS_OPENAI_MODEL")
		os.Unsetenv("MARKETLENS_OPENAI_TEMPERATURE")
		os.Unsetenv("MARKETLENS_OPENAI_TIMEOUT")
		os.Unsetenv("MARKETLENS_OPENAI_COUNTRY")
		os.Unsetenv("MARKETLENS_OPENAI_CITY")
		os.Unsetenv("MARKETLENS_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("MARKETLENS_OPENAI_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
			t.Errorf("OpenAI.BaseURL = %s, want https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "gpt-4o-search-preview" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o-search-preview", cfg.OpenAI.Model)
		}
		if cfg.OpenAI.Temperature != 0.2 {
			t.Errorf("OpenAI.Temperature = %v, want 0.2", cfg.OpenAI.Temperature)
		}
		if cfg.OpenAI.Timeout != 120*time.Second {
			t.Errorf("OpenAI.Timeout = %v, want 120s", cfg.OpenAI.Timeout)
		}
		if cfg.OpenAI.Country != "LT" {
			t.Errorf("OpenAI.Country = %s, want LT", cfg.OpenAI.Country)
		}
		if cfg.OpenAI.City != "Vilnius" {
			t.Errorf("OpenAI.City = %s, want Vilnius", cfg.OpenAI.City)
		}
		if cfg.RateLimit.PerIP != 60 {
			t.Errorf("RateLimit.PerIP = %d, want 60", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MARKETLENS_SERVER_PORT", "9090")
		os.Setenv("MARKETLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("MARKETLENS_OPENAI_API_KEY", "custom-api-key")
		os.Setenv("MARKETLENS_OPENAI_BASE_URL", "https://custom.api.com/v1")
		os.Setenv("MARKETLENS_OPENAI_MODEL", "gpt-4o-mini-search-preview")
		os.Setenv("MARKETLENS_OPENAI_TIMEOUT", "45s")
		os.Setenv("MARKETLENS_OPENAI_COUNTRY", "LV")
		os.Setenv("MARKETLENS_OPENAI_CITY", "Riga")
		os.Setenv("MARKETLENS_RATELIMIT_PER_IP", "120")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.OpenAI.APIKey != "custom-api-key" {
			t.Errorf("OpenAI.APIKey = %s, want custom-api-key", cfg.OpenAI.APIKey)
		}
		if cfg.OpenAI.BaseURL != "https://custom.api.com/v1" {
			t.Errorf("OpenAI.BaseURL = %s, want https://custom.api.com/v1", cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.Model != "gpt-4o-mini-search-preview" {
			t.Errorf("OpenAI.Model = %s, want gpt-4o-mini-search-preview", cfg.OpenAI.Model)
		}
		if cfg.OpenAI.Timeout != 45*time.Second {
			t.Errorf("OpenAI.Timeout = %v, want 45s", cfg.OpenAI.Timeout)
		}
		if cfg.OpenAI.Country != "LV" {
			t.Errorf("OpenAI.Country = %s, want LV", cfg.OpenAI.Country)
		}
		if cfg.OpenAI.City != "Riga" {
			t.Errorf("OpenAI.City = %s, want Riga", cfg.OpenAI.City)
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: OpenAI API key is required (set MARKETLENS_OPENAI_API_KEY)" {
			t.Errorf("Load() error = %v, want 'OpenAI API key is required'", err)
		}
	})

	t.Run("fails validation for out-of-range temperature", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MARKETLENS_OPENAI_API_KEY", "test-key")
		os.Setenv("MARKETLENS_OPENAI_TEMPERATURE", "3.5")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid temperature")
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("MARKETLENS_OPENAI_API_KEY", "test-key")
		os.Setenv("MARKETLENS_RATELIMIT_PER_IP", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero rate limit")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		err := loadEnvFile()
		if err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Create .env file
		envContent := `
# Comment line
TEST_VAR_1=value1
TEST_VAR_2=value2

# Another comment
TEST_VAR_3=value3
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		// Clear any existing values
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value2" {
			t.Errorf("TEST_VAR_2 = %s, want value2", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_VAR_3") != "value3" {
			t.Errorf("TEST_VAR_3 = %s, want value3", os.Getenv("TEST_VAR_3"))
		}

		// Cleanup
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Set existing env var
		os.Setenv("TEST_OVERRIDE", "existing-value")

		// Create .env file that tries to override
		envContent := "TEST_OVERRIDE=new-value"
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		// Should still have original value
		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}

		os.Unsetenv("TEST_OVERRIDE")
	})
}
