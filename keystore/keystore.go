package keystore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Credential is a locally generated account: a lowercase address and
// the secret material backing it. The secret never leaves the store's
// concern; callers only pass the address around.
type Credential struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

// KeyStore provides get-or-create access to one local credential.
// GetOrCreate is idempotent per store: the first call generates and
// persists, every later call returns the same credential.
type KeyStore interface {
	GetOrCreate() (Credential, error)
}

// FileStore persists the credential as a JSON file with 0600
// permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed key store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetOrCreate returns the stored credential, generating one first if
// none exists
func (s *FileStore) GetOrCreate() (Credential, error) {
	raw, err := os.ReadFile(s.path)
	if err == nil {
		var cred Credential
		if err := json.Unmarshal(raw, &cred); err != nil {
			return Credential{}, fmt.Errorf("failed to decode credential file: %w", err)
		}
		return cred, nil
	}
	if !os.IsNotExist(err) {
		return Credential{}, fmt.Errorf("failed to read credential file: %w", err)
	}

	cred, err := generate()
	if err != nil {
		return Credential{}, err
	}

	raw, err = json.Marshal(cred)
	if err != nil {
		return Credential{}, fmt.Errorf("failed to encode credential: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return Credential{}, fmt.Errorf("failed to create credential directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return Credential{}, fmt.Errorf("failed to write credential file: %w", err)
	}

	return cred, nil
}

// generate creates fresh credential material. The address is derived
// from the secret so regeneration with the same secret is stable.
func generate() (Credential, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return Credential{}, fmt.Errorf("failed to generate secret: %w", err)
	}

	digest := sha256.Sum256(secret)
	return Credential{
		Address: "0x" + hex.EncodeToString(digest[12:]),
		Secret:  hex.EncodeToString(secret),
	}, nil
}
