package configs

// Cron holds configuration for the scheduled sweep endpoints. The Secret
// is required as a bearer token on the cron routes; when unset the routes
// reject every request.
type Cron struct {
	Secret string `env:"SECRET"`
}
