package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingCredential is a configuration error: no API key is available.
var ErrMissingCredential = errors.New("missing API credential")

// CredentialSource supplies the API key when a request is about to be sent.
type CredentialSource interface {
	APIKey() (string, error)
}

// StaticCredential is a fixed key.
type StaticCredential string

func (s StaticCredential) APIKey() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrMissingCredential
	}
	return string(s), nil
}

// EnvCredential names an environment variable read on every call.
type EnvCredential string

func (e EnvCredential) APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(string(e)))
	if key == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrMissingCredential, string(e))
	}
	return key, nil
}
