package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"meeting-room-booking/pkg/apiclient"
)

// fileTokenStore keeps the session in a JSON file readable only by the
// user.
type fileTokenStore struct {
	path string
}

func (s *fileTokenStore) Tokens() (apiclient.TokenPair, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return apiclient.TokenPair{}, false
	}
	var pair apiclient.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil || pair.AccessToken == "" {
		return apiclient.TokenPair{}, false
	}
	return pair, true
}

func (s *fileTokenStore) SetTokens(pair apiclient.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *fileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
