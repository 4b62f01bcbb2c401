// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds everything needed to talk to the Yahoo Fantasy Sports API.
// Values come from YAHOO_* environment variables; callers typically run
// godotenv first so a local .env file works too.
type Settings struct {
	ClientID     string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"CLIENT_SECRET" required:"true"`
	RedirectURL  string `envconfig:"REDIRECT_URL" default:"http://localhost:8765/callback"`
	Scope        string `envconfig:"SCOPE" default:"fspt-r"`
	TokenPath    string `envconfig:"TOKEN_PATH"`
	UserAgent    string `envconfig:"USER_AGENT" default:"yahoo-ffb-api/1.0"`
}

// New reads settings from YAHOO_* environment variables. TokenPath defaults
// to ~/.yfa/tokens.json when unset.
func New() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("yahoo", &s); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// envconfig treats a set-but-empty variable as present, so required
	// tags alone do not catch blank credentials.
	if s.ClientID == "" || s.ClientSecret == "" {
		return nil, errors.New("YAHOO_CLIENT_ID and YAHOO_CLIENT_SECRET must be set")
	}

	if s.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir for token path: %w", err)
		}
		s.TokenPath = filepath.Join(home, ".yfa", "tokens.json")
	}

	return &s, nil
}
