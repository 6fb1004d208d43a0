package configs

// Credentials can be supplied through environment variables so that keys and
// secrets do not have to be written to the credential file or passed on the
// command line. An environment variable is consulted only for a field that
// was not supplied explicitly.

const (
	// EnvAPIKey overrides the api_key credential.
	EnvAPIKey = "KITE_API_KEY"
	// EnvAPISecret overrides the api_secret credential.
	EnvAPISecret = "KITE_API_SECRET"
	// EnvAccessToken overrides the access_token credential.
	EnvAccessToken = "KITE_ACCESS_TOKEN"
)

// envFill loads still-empty fields from the environment.
func (r *Resolver) envFill(c *Credentials) {
	if c.APIKey == "" {
		if v, ok := r.lookupEnv(EnvAPIKey); ok {
			c.APIKey = v
		}
	}
	if c.APISecret == "" {
		if v, ok := r.lookupEnv(EnvAPISecret); ok {
			c.APISecret = v
		}
	}
	if c.AccessToken == "" {
		if v, ok := r.lookupEnv(EnvAccessToken); ok {
			c.AccessToken = v
		}
	}
}
