package cmd

import (
	"reflect"
	"testing"
	"time"

	"github.com/elliot-anderson-afk/kite-api-wrapper/api"
)

func TestRootCommand_FlagsToClientConfig(t *testing.T) {
	tests := map[string]struct {
		args []string
		want api.ClientConfig
	}{
		"no flags fall back to the defaults": {
			args: []string{},
			want: api.ClientConfig{Timeout: api.DefaultTimeout},
		},
		"every flag reaches the config": {
			args: []string{
				"--api-key", "key", "--api-secret", "secret",
				"--access-token", "token", "--config", "/etc/kite/alt.ini",
				"--debug", "--timeout", "12s",
			},
			want: api.ClientConfig{
				APIKey:      "key",
				APISecret:   "secret",
				AccessToken: "token",
				ConfigPath:  "/etc/kite/alt.ini",
				Debug:       true,
				Timeout:     12 * time.Second,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// --- given
			// registering the flags resets the shared flag variables
			c := newRootCommand()

			// --- when
			if err := c.PersistentFlags().Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			// --- then
			if got := clientConfig(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("clientConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
