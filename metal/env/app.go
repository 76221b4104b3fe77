package env

import "time"

const local = "local"
const staging = "staging"
const production = "production"

type AppEnvironment struct {
	Name       string `validate:"required,min=4"`
	URL        string `validate:"required,url"`
	Type       string `validate:"required,lowercase,oneof=local production staging"`
	MasterKey  string `validate:"required,min=32"`
	SessionTTL int    `validate:"required,min=1"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsStaging() bool {
	return e.Type == staging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}

// GetSessionTTL returns how long issued session tokens remain valid.
func (e AppEnvironment) GetSessionTTL() time.Duration {
	return time.Duration(e.SessionTTL) * time.Minute
}
