package utils

import (
	twjwt "github.com/twilio/twilio-go/client/jwt"

	"github.com/vetcare-app/vetcare-api/config"
)

// CreateVideoToken mints a Twilio access token scoped to one room and one
// identity. The token is opaque to the rest of the application.
func CreateVideoToken(identity, roomName string) (string, error) {
	params := twjwt.AccessTokenParams{
		AccountSid:    config.C.Twilio.AccountSID,
		SigningKeySid: config.C.Twilio.APIKeySID,
		Secret:        config.C.Twilio.APIKeySecret,
		Identity:      identity,
		Ttl:           3600,
	}

	token := twjwt.CreateAccessToken(params)
	token.AddGrant(&twjwt.VideoGrant{Room: roomName})
	return token.ToJwt()
}
