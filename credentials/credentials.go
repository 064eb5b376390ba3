package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope is the OAuth2 scope required by the FCM HTTP v1 API.
const Scope = "https://www.googleapis.com/auth/firebase.messaging"

var (
	ErrNoFile      = errors.New("service account file is not configured")
	ErrNoProjectId = errors.New("service account has no project_id")
)

type Credentials struct {
	File        string
	ProjectId   string
	TokenSource oauth2.TokenSource
}

// Load reads a service account JSON file. The returned token source caches
// access tokens and refreshes them when they expire.
func Load(ctx context.Context, path string) (*Credentials, error) {
	if path == "" {
		return nil, ErrNoFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service account: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, Scope)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}
	if creds.ProjectID == "" {
		return nil, ErrNoProjectId
	}
	return &Credentials{
		File:        path,
		ProjectId:   creds.ProjectID,
		TokenSource: creds.TokenSource,
	}, nil
}
