package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "bookbabel" {
		t.Errorf("Expected Use to be 'bookbabel', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Book translator") {
		t.Errorf("Expected Short description to contain 'Book translator'")
	}

	// Test that flags are set up
	flagTests := []string{
		"config",
		"lang",
		"output",
		"url",
		"book-cache",
		"list-languages",
		"chunk-size",
		"max-retries",
		"base-delay",
		"rpm",
		"timeout",
		"cache-backend",
		"cache-file",
		"provider",
		"fallback-provider",
		"model",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestSetupFlags_Defaults(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	langFlag := cmd.Flags().Lookup("lang")
	if langFlag == nil {
		t.Fatal("lang flag not found")
	}
	if langFlag.DefValue != "id" {
		t.Errorf("Expected default lang to be id, got %s", langFlag.DefValue)
	}

	backendFlag := cmd.Flags().Lookup("cache-backend")
	if backendFlag == nil {
		t.Fatal("cache-backend flag not found")
	}
	if backendFlag.DefValue != "json" {
		t.Errorf("Expected default cache backend to be json, got %s", backendFlag.DefValue)
	}
}

func TestInitConfig_EnvPrefix(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	InitConfig("")

	os.Setenv("BOOKBABEL_TEST_VAR", "test-value")
	defer os.Unsetenv("BOOKBABEL_TEST_VAR")

	if viper.GetString("test_var") != "test-value" {
		t.Error("Environment variable not properly loaded")
	}
}

func TestGetAPIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		provider  string
		envVar    string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:     "sealion from environment",
			provider: "sealion",
			envVar:   "SEA_LION_API_KEY",
			envKey:   "env-test-key",
			expected: "env-test-key",
		},
		{
			name:      "sealion from config when no env",
			provider:  "sealion",
			envVar:    "SEA_LION_API_KEY",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:     "gemini from environment",
			provider: "gemini",
			envVar:   "GEMINI_API_KEY",
			envKey:   "gemini-env-key",
			expected: "gemini-env-key",
		},
		{
			name:     "empty when neither set",
			provider: "sealion",
			envVar:   "SEA_LION_API_KEY",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			if tt.envKey != "" {
				os.Setenv(tt.envVar, tt.envKey)
				defer os.Unsetenv(tt.envVar)
			} else {
				os.Unsetenv(tt.envVar)
			}

			if tt.configKey != "" {
				switch tt.provider {
				case "gemini":
					viper.Set("api.gemini_key", tt.configKey)
				default:
					viper.Set("api.sealion_key", tt.configKey)
				}
			}

			if got := GetAPIKey(tt.provider); got != tt.expected {
				t.Errorf("GetAPIKey(%q) = %v, want %v", tt.provider, got, tt.expected)
			}
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if v := APIKeyEnvVar("sealion"); v != "SEA_LION_API_KEY" {
		t.Errorf("Expected SEA_LION_API_KEY, got %s", v)
	}
	if v := APIKeyEnvVar("gemini"); v != "GEMINI_API_KEY" {
		t.Errorf("Expected GEMINI_API_KEY, got %s", v)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.Flags().Set("lang", "th")
	cmd.Flags().Set("cache-backend", "sqlite")
	cmd.Flags().Set("rpm", "5")

	bindFlagsToViper(cmd)

	if viper.GetString("translate.lang") != "th" {
		t.Errorf("Expected translate.lang to be th, got %s", viper.GetString("translate.lang"))
	}
	if viper.GetString("cache.backend") != "sqlite" {
		t.Errorf("Expected cache.backend to be sqlite, got %s", viper.GetString("cache.backend"))
	}
	if viper.GetInt("translate.rpm") != 5 {
		t.Errorf("Expected translate.rpm to be 5, got %d", viper.GetInt("translate.rpm"))
	}
}
