package cache

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keyFileName   = "cache.key"
	cacheFileName = "session.cache"
	nonceSize     = 24
)

// ErrCorruptCache is returned when the cache file cannot be decrypted,
// typically after the key file was replaced or the file was tampered with.
var ErrCorruptCache = errors.New("cache: file contents could not be decrypted")

// fileClient implements Client as a single encrypted file on disk. Tokens
// should not sit on disk in the clear, so the whole key-value map is sealed
// with a key derived from a per-install random key file.
type fileClient struct {
	path string
	key  [32]byte
}

// NewFileClient prepares dir (created 0700 if missing), loads or creates
// the install key file, and returns a file-backed cache client.
func NewFileClient(dir string) (Client, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	seed, err := loadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}

	c := &fileClient{path: filepath.Join(dir, cacheFileName)}
	if err := deriveKey(seed, c.key[:]); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *fileClient) Get(ctx context.Context, key string) (string, error) {
	entries, err := c.load()
	if err != nil {
		return "", err
	}
	val, ok := entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (c *fileClient) Set(ctx context.Context, key, value string) error {
	entries, err := c.load()
	if err != nil && !errors.Is(err, ErrCorruptCache) {
		return err
	}
	if entries == nil {
		// A corrupt file is replaced wholesale on the next write.
		entries = map[string]string{}
	}
	entries[key] = value
	return c.save(entries)
}

func (c *fileClient) Delete(ctx context.Context, key string) error {
	entries, err := c.load()
	if err != nil {
		if errors.Is(err, ErrCorruptCache) {
			return os.Remove(c.path)
		}
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return c.save(entries)
}

// load reads and decrypts the cache file. A missing file yields an empty map.
func (c *fileClient) load() (map[string]string, error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(raw) < nonceSize {
		return nil, ErrCorruptCache
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, ErrCorruptCache
	}

	entries := map[string]string{}
	if err := json.Unmarshal(plain, &entries); err != nil {
		return nil, ErrCorruptCache
	}
	return entries, nil
}

func (c *fileClient) save(entries map[string]string) error {
	plain, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache entries: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &c.key)

	// Write-then-rename keeps a crash from leaving a half-written file.
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return os.Rename(tmp, c.path)
}

// loadOrCreateKey returns the 32-byte install seed, generating and
// persisting one on first run.
func loadOrCreateKey(path string) ([]byte, error) {
	seed, err := os.ReadFile(path)
	if err == nil && len(seed) == 32 {
		return seed, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	seed = make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}
	if err := os.WriteFile(path, seed, 0o600); err != nil {
		return nil, fmt.Errorf("failed to persist key file: %w", err)
	}
	return seed, nil
}

// deriveKey expands the install seed into the sealing key via HKDF-SHA256.
func deriveKey(seed, out []byte) error {
	h := hkdf.New(sha256.New, seed, nil, []byte("session-cache"))
	if _, err := io.ReadFull(h, out); err != nil {
		return fmt.Errorf("failed to derive cache key: %w", err)
	}
	return nil
}
