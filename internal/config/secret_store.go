package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSecretNotFound indica que o vault respondeu, mas sem valor para o nome pedido
var ErrSecretNotFound = errors.New("secret not found")

//go:generate mockgen -source=secret_store.go -destination=mocks/mock_secret_store.go -package=mocks

// SecretStore é o vault consultado quando a credencial não está no ambiente
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

type getEncryptedSecretRequest struct {
	SecretName string `json:"secret_name"`
}

// SupabaseVault chama o RPC get_encrypted_secret via PostgREST
type SupabaseVault struct {
	URL            string
	ServiceRoleKey string
	HTTPClient     *http.Client
}

func NewSupabaseVault(cfg *Config) *SupabaseVault {
	return &SupabaseVault{
		URL:            cfg.Supabase.URL,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
		HTTPClient:     &http.Client{},
	}
}

func (c *SupabaseVault) GetSecret(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/rest/v1/rpc/get_encrypted_secret", c.URL)

	jsonData, err := json.Marshal(getEncryptedSecretRequest{SecretName: name})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.ServiceRoleKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceRoleKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("config: error calling get_encrypted_secret: status %d: %s", resp.StatusCode, body)
	}

	// O RPC devolve um escalar JSON: "valor" ou null
	var secret *string
	if err := json.Unmarshal(body, &secret); err != nil {
		return "", fmt.Errorf("config: error decoding get_encrypted_secret response: %w", err)
	}

	if secret == nil || *secret == "" {
		return "", ErrSecretNotFound
	}

	return *secret, nil
}
