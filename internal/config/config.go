package config

type Config interface {
	EnvConfig
	CasConfig
	CookieConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type CasConfig interface {
	GetCasServerURL() string
	GetSigningKey() string
	GetValidateTimeoutSeconds() int
}

type CookieConfig interface {
	GetSessionCookieName() string
	GetSessionCookieMaxAge() int
}

type mainConfig struct {
	EnvVars
	Cas
	Cookie
}

func New() Config {
	return mainConfig{}
}
