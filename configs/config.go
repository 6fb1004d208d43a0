// Package configs resolves the Kite API credentials from explicit
// parameters, environment variables and an INI credential file, in that
// order of precedence, and writes refreshed access tokens back to the file.
package configs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
	"github.com/elliot-anderson-afk/kite-api-wrapper/utils/log"
)

const (
	sectionName    = "Kite"
	keyAPIKey      = "api_key"
	keyAPISecret   = "api_secret"
	keyAccessToken = "access_token"
)

// Credentials is the resolved credential set for one client session.
// AccessToken may be empty before login; Path is the credential file the
// values were (or would be) read from.
type Credentials struct {
	APIKey      string
	APISecret   string
	AccessToken string
	Path        string
}

// Resolver fills a Credentials from the environment and the credential file.
// The lookups are injected so tests can run against a fake environment and
// home directory without mutating process state.
type Resolver struct {
	lookupEnv   func(string) (string, bool)
	userHomeDir func() (string, error)
}

// NewResolver returns a Resolver backed by the process environment.
func NewResolver() *Resolver {
	return NewResolverFrom(os.LookupEnv, os.UserHomeDir)
}

// NewResolverFrom returns a Resolver with injected environment and home
// directory lookups.
func NewResolverFrom(lookupEnv func(string) (string, bool), userHomeDir func() (string, error)) *Resolver {
	return &Resolver{lookupEnv: lookupEnv, userHomeDir: userHomeDir}
}

// DefaultPath returns the default credential file location,
// <home>/.kite/config.ini.
func (r *Resolver) DefaultPath() (string, error) {
	home, err := r.userHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve the home directory")
	}
	return filepath.Join(home, ".kite", "config.ini"), nil
}

// Resolve computes the effective credentials. Each field is resolved
// independently: explicit value first, then the corresponding environment
// variable, then the [Kite] section of the credential file. A missing,
// unreadable or sectionless file leaves fields unresolved rather than
// failing; only a still-missing api_key or api_secret is an error.
func (r *Resolver) Resolve(explicit Credentials) (*Credentials, error) {
	resolved := explicit
	if resolved.Path == "" {
		if p, err := r.DefaultPath(); err == nil {
			resolved.Path = p
		}
	}

	r.envFill(&resolved)
	r.fileFill(&resolved)

	if resolved.APIKey == "" || resolved.APISecret == "" {
		return nil, kiteerrors.New(kiteerrors.Data,
			"API key or secret is missing. Please set them in config or environment variables.")
	}
	return &resolved, nil
}

// fileFill loads still-empty fields from the [Kite] section of the
// credential file, if the file exists and parses.
func (r *Resolver) fileFill(c *Credentials) {
	if c.Path == "" {
		return
	}
	if _, err := os.Stat(c.Path); err != nil {
		return
	}

	f, err := ini.Load(c.Path)
	if err != nil {
		log.Warn("failed to parse the credential file %s: %v", c.Path, err)
		return
	}
	sec, err := f.GetSection(sectionName)
	if err != nil {
		return
	}

	if c.APIKey == "" {
		c.APIKey = sec.Key(keyAPIKey).String()
	}
	if c.APISecret == "" {
		c.APISecret = sec.Key(keyAPISecret).String()
	}
	if c.AccessToken == "" {
		c.AccessToken = sec.Key(keyAccessToken).String()
	}
}

// PersistToken upserts the access token under [Kite] in an existing
// credential file, preserving all other sections and keys. The file is a
// best-effort cache: a missing file or a failed write is skipped silently.
func (r *Resolver) PersistToken(path, token string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	f, err := ini.Load(path)
	if err != nil {
		log.Warn("failed to parse the credential file %s: %v", path, err)
		return
	}
	f.Section(sectionName).Key(keyAccessToken).SetValue(token)
	if err := f.SaveTo(path); err != nil {
		log.Warn("failed to save the access token to %s: %v", path, err)
	}
}
