// Package auth stores the API bearer token in the system keyring.
package auth

import (
	"errors"

	"github.com/epilist-cli/epilist/constant"
	"github.com/zalando/go-keyring"
)

const user = "api-token"

// ErrNoToken is returned by Token when nothing has been stored.
var ErrNoToken = errors.New("no API token stored, run \"epilist auth set\"")

// SetToken persists token to the system keyring.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constant.App, user, token)
}

// Token retrieves the stored token.
func Token() (string, error) {
	token, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	return token, err
}

// DeleteToken removes the stored token. Deleting a missing token is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
