package creds

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeygen struct {
	key  string
	err  error
	host string
	user string
}

func (f *fakeKeygen) GenerateKey(_ context.Context, host, user, password string) (string, error) {
	f.host = host
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

func TestResolveExplicitKeyWins(t *testing.T) {
	cred, err := Resolve(context.Background(), Options{
		ExplicitKey: "explicit-key",
		SavedKey:    "saved-key",
		Interactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", cred.Key)
}

func TestResolveSavedKey(t *testing.T) {
	cred, err := Resolve(context.Background(), Options{
		SavedKey:  "saved-key",
		SavedUser: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "saved-key", cred.Key)
	assert.Equal(t, "admin", cred.User)
}

func TestResolveNonInteractiveWithoutKey(t *testing.T) {
	_, err := Resolve(context.Background(), Options{Interactive: false})
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestResolveInteractiveKeygen(t *testing.T) {
	keygen := &fakeKeygen{key: "generated-key"}

	cred, err := Resolve(context.Background(), Options{
		Host:        "fw01.example.com",
		Interactive: true,
		Keygen:      keygen,
		ReadLine: func(prompt string) (string, error) {
			return "admin", nil
		},
		ReadPassword: func(prompt string) (string, error) {
			assert.Contains(t, prompt, "admin")
			return "secret", nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-key", cred.Key)
	assert.Equal(t, "admin", cred.User)
	assert.Equal(t, "fw01.example.com", keygen.host)
}

func TestResolveKeygenFailure(t *testing.T) {
	keygen := &fakeKeygen{err: fmt.Errorf("fw01: authentication failed")}

	_, err := Resolve(context.Background(), Options{
		SavedUser:   "admin",
		Host:        "fw01",
		Interactive: true,
		Keygen:      keygen,
		ReadPassword: func(string) (string, error) {
			return "wrong", nil
		},
	})
	assert.Error(t, err)
}
