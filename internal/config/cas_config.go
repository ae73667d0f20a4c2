package config

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// devSigningKey is the development fallback for CAS_SIGNING_KEY. It must never
// be the active key in a production deployment; GetSigningKey refuses it there.
const devSigningKey = "dev-secret-change-me"

type Cas struct{}

var _ CasConfig = Cas{}

func (Cas) GetCasServerURL() string {
	return GetEnv(casServerVar, "https://cas.unicaen.fr")
}

func (c Cas) GetSigningKey() string {
	key := GetEnv(signingKeyVar, "")
	if key != "" {
		return key
	}
	if (EnvVars{}).GetEnv() == "PROD" {
		log.Fatal().Msg("CAS_SIGNING_KEY must be set in production")
	}
	log.Warn().Msg("CAS_SIGNING_KEY not set, using development fallback key")
	return devSigningKey
}

func (Cas) GetValidateTimeoutSeconds() int {
	raw := GetEnv("CAS_VALIDATE_TIMEOUT", "5")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Warn().Str("value", raw).Msg("invalid CAS_VALIDATE_TIMEOUT, using 5s")
		return 5
	}
	return seconds
}
