package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	ChatGPTApiKey string `json:"gpt"`
}

// LoadSecrets reads the environment-appropriate secrets file. A
// CHATGPT_API_KEY env var takes precedence over the file so deploys
// without a secrets volume still work. A missing file is only an error
// when the env var is absent too.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("ADVISOR_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("ADVISOR_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile)
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", secretsFile, err)
		}
	}

	if key := os.Getenv("CHATGPT_API_KEY"); key != "" {
		secrets.ChatGPTApiKey = key
	}

	return &secrets, nil
}
