package openai

// Config holds the upstream OpenAI settings, read from the proxy's OPENAI_*
// environment variables. Each field maps to an SDK option: APIKey to
// option.WithAPIKey, BaseURL to option.WithBaseURL (point it at a compatible
// gateway to proxy a non-OpenAI backend), Timeout to
// option.WithRequestTimeout in seconds, MaxRetries to option.WithMaxRetries.
//
// Leaving OPENAI_API_KEY empty is valid: the process then serves the local
// echo provider instead of calling upstream.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	Timeout    int    `env:"OPENAI_TIMEOUT"     envDefault:"60"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES" envDefault:"3"`
}
