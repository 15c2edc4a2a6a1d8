package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPTTL is how long a login code stays valid.
const OTPTTL = 5 * time.Minute

func otpKey(email string) string {
	return "otp:" + email
}

// SetOTP stores the login code for an email with expiry.
func SetOTP(email, code string) error {
	return Client.Set(Ctx, otpKey(email), code, OTPTTL).Err()
}

// GetOTP returns the stored code, or "" when expired or never issued.
func GetOTP(email string) (string, error) {
	code, err := Client.Get(Ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// DeleteOTP drops the code after a successful verification, codes are single
// use.
func DeleteOTP(email string) error {
	return Client.Del(Ctx, otpKey(email)).Err()
}
