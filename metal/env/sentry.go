package env

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
}
