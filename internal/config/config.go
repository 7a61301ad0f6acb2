package config // package config loads application configuration from environment variables

import "time"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a working default so the demo
// runs with no environment at all; .env files are supported through main.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	JWTSecret      string        // secret used to sign JWTs
	AccessTTLMin   int           // access token time-to-live in minutes
	StorageBackend string        // blob backend: "file" or "redis"
	DataDir        string        // directory for file-backed blobs
	LoginDelay     time.Duration // simulated latency for login/register
	SearchDelay    time.Duration // simulated latency for train search
	PaymentDelay   time.Duration // simulated latency for payment processing
}

// Load reads configuration values from environment variables, falling back
// to demo defaults.  The simulated delays model the network round trips of
// the reference behavior; tests set them to zero.
func Load() Config {
	return Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		JWTSecret:      envStr("JWT_SECRET", "railway-demo-secret"), // demo default, override outside dev
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 60),
		StorageBackend: envStr("STORAGE_BACKEND", "file"),
		DataDir:        envStr("DATA_DIR", "data"),
		LoginDelay:     envDur("LOGIN_DELAY", 1000*time.Millisecond),
		SearchDelay:    envDur("SEARCH_DELAY", 1500*time.Millisecond),
		PaymentDelay:   envDur("PAYMENT_DELAY", 3000*time.Millisecond),
	}
}
