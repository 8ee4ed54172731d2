package plugin

import (
	"os"
	"strings"
)

// ActivationPolicy controls how the registry responds to bad startup
// activations (unknown plugin, unsupported slot).
type ActivationPolicy string

const (
	// PolicyStrict fails fast on the first bad activation.
	PolicyStrict ActivationPolicy = "strict"
	// PolicyGraceful logs the problem and skips the activation.
	PolicyGraceful ActivationPolicy = "graceful"
)

// RegistryConfig configures registry behaviour.
type RegistryConfig struct {
	ActivationPolicy ActivationPolicy
}

// DefaultConfig returns environment-aware defaults for the registry configuration.
func DefaultConfig() *RegistryConfig {
	if isCIEnvironment() {
		return &RegistryConfig{ActivationPolicy: PolicyStrict}
	}
	return &RegistryConfig{ActivationPolicy: PolicyGraceful}
}

func isCIEnvironment() bool {
	ciEnvVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_HOME",
	}

	for _, key := range ciEnvVars {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" && strings.ToLower(value) != "false" && value != "0" {
			return true
		}
	}

	return false
}
