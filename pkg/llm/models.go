package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// DashScope's OpenAI-compatible endpoint serves the Qwen models the built-in
// aliases point at.
const (
	DefaultBaseURL   = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultAPIKeyEnv = "DASHSCOPE_API_KEY"

	// BaseURLEnv overrides the backend base URL for every model when set.
	BaseURLEnv = "SYROMORPH_BASE_URL"
)

// Backend is the resolved connection configuration for one model.
type Backend struct {
	BaseURL string
	APIKey  string
}

// ModelSpec maps a short alias to a concrete model on a backend.
type ModelSpec struct {
	// Alias is the short name accepted by the --model flag.
	Alias string `json:"alias"`
	// Model is the backend model identifier.
	Model string `json:"model"`
	// BaseURL is the OpenAI-compatible endpoint serving the model.
	BaseURL string `json:"baseURL,omitempty"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `json:"apiKeyEnv,omitempty"`
}

// Backend resolves the spec's connection configuration from the environment.
func (m ModelSpec) Backend() Backend {
	baseURL := m.BaseURL
	if override := os.Getenv(BaseURLEnv); override != "" {
		baseURL = override
	}

	return Backend{
		BaseURL: baseURL,
		APIKey:  os.Getenv(m.APIKeyEnv),
	}
}

// Registry resolves model aliases to specs.
type Registry struct {
	Models []ModelSpec `json:"models"`
}

func builtinModels() []ModelSpec {
	aliases := []struct{ alias, model string }{
		{"free", "qwen2.5-1.5b-instruct"},
		{"turbo", "qwen-turbo"},
		{"plus", "qwen-plus"},
		{"max", "qwen-max"},
		{"max-0919", "qwen-max-0919"},
		{"llama", "llama3.1-405b-instruct"},
	}

	models := make([]ModelSpec, 0, len(aliases))
	for _, a := range aliases {
		models = append(models, ModelSpec{
			Alias:     a.alias,
			Model:     a.model,
			BaseURL:   DefaultBaseURL,
			APIKeyEnv: DefaultAPIKeyEnv,
		})
	}
	return models
}

// BuiltinRegistry returns the registry of built-in model aliases.
func BuiltinRegistry() *Registry {
	return &Registry{Models: builtinModels()}
}

// ParseRegistryFile parses a YAML model registry. Registered models shadow
// built-in aliases of the same name; the remaining built-ins stay available.
func ParseRegistryFile(path string) (*Registry, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path to model registry file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model registry file: %w", err)
	}

	registry := &Registry{}
	if err := yaml.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model registry file: %w", err)
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}

	registry.Models = append(registry.Models, builtinModels()...)

	return registry, nil
}

func (m *ModelSpec) UnmarshalJSON(data []byte) error {
	type Doppleganger ModelSpec

	tmp := struct {
		*Doppleganger
	}{
		Doppleganger: (*Doppleganger)(m),
	}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	if m.BaseURL == "" {
		m.BaseURL = DefaultBaseURL
	}
	if m.APIKeyEnv == "" {
		m.APIKeyEnv = DefaultAPIKeyEnv
	}

	return nil
}

// Validate checks that every registered model has an alias and a model ID.
func (r *Registry) Validate() error {
	for i, m := range r.Models {
		if m.Alias == "" {
			return fmt.Errorf("model at index %d has no alias", i)
		}
		if m.Model == "" {
			return fmt.Errorf("model %q has no model id", m.Alias)
		}
	}
	return nil
}

// Resolve looks up name as an alias. A name that matches no alias is used
// verbatim as a model ID on the default backend, so new models work without a
// registry entry.
func (r *Registry) Resolve(name string) ModelSpec {
	for _, m := range r.Models {
		if m.Alias == name {
			return m
		}
	}

	return ModelSpec{
		Alias:     name,
		Model:     name,
		BaseURL:   DefaultBaseURL,
		APIKeyEnv: DefaultAPIKeyEnv,
	}
}
