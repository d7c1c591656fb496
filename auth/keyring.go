// Package auth provides a high-level API for persisting and retrieving panel credentials from the system keyring.
//
// Storing passwords here lets the config file carry provider entries without plaintext secrets:
// a provider whose password field is empty falls back to the keyring at load time.
package auth

import (
	"github.com/zalando/go-keyring"
)

const service = "xtrex"

// SetPassword persists the panel password for the named provider to the system keyring.
func SetPassword(provider, password string) error {
	return keyring.Set(service, provider, password)
}

// GetPassword retrieves the panel password for the named provider from the system keyring.
func GetPassword(provider string) (string, error) {
	return keyring.Get(service, provider)
}

// DeletePassword removes the panel password for the named provider from the system keyring.
func DeletePassword(provider string) error {
	return keyring.Delete(service, provider)
}
