package config

// AuthConfig groups third-party sign-in configuration.
// Password login needs no client-side configuration; Google sign-in is
// enabled by setting the OAuth client ID issued for this application.
type AuthConfig struct {
	// GoogleClientID is the Google OAuth client identifier. Empty disables
	// Google sign-in entirely.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// GoogleClientSecret is required only for the loopback sign-in flow
	// used by the CLI (it is not needed to verify ID tokens).
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// GoogleRedirectAddr is the local listen address for the loopback
	// sign-in flow.
	GoogleRedirectAddr string `env:"GOOGLE_REDIRECT_ADDR" envDefault:"127.0.0.1:8812"`
}
