package configs

// Gemini configures the generative model used for content validation. An
// empty APIKey disables validation; the /validate endpoint then reports an
// internal error instead of calling upstream.
type Gemini struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.0-flash"`
}
