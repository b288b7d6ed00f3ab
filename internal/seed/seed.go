// Package seed turns a brand identity into a reproducible digest and slices
// that digest into a parameter vector.
//
// GenerateSeed is the only place non-determinism enters the engine: it mixes
// a timestamp and a random salt into the digest. Everything derived from a
// Seed afterwards is pure.
package seed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seed is an opaque hex-encoded SHA-256 digest.
type Seed string

// Source produces seeds for an identity and category. *Generator is the
// production Source.
type Source interface {
	Generate(ctx context.Context, identity, category string) (Seed, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, identity, category string) (Seed, error)

// Generate calls f.
func (f SourceFunc) Generate(ctx context.Context, identity, category string) (Seed, error) {
	return f(ctx, identity, category)
}

// Generator produces salted seeds. The zero value is not usable; use
// NewGenerator or the package-level GenerateSeed.
type Generator struct {
	now  func() time.Time
	salt func() (string, error)
}

// NewGenerator returns a Generator backed by the wall clock and random UUIDs.
func NewGenerator() *Generator {
	return &Generator{now: time.Now, salt: randomSalt}
}

func randomSalt() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var defaultGenerator = NewGenerator()

// GenerateSeed returns a fresh seed for identity and category using the
// default generator.
func GenerateSeed(ctx context.Context, identity, category string) (Seed, error) {
	return defaultGenerator.Generate(ctx, identity, category)
}

// Generate returns a fresh salted seed. A salt failure is returned to the
// caller unchanged apart from wrapping; it is never retried.
func (g *Generator) Generate(ctx context.Context, identity, category string) (Seed, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	salt, err := g.salt()
	if err != nil {
		return "", fmt.Errorf("failed to generate seed salt: %w", err)
	}
	return Compose(identity, category, g.now(), salt), nil
}

// Compose is the pure digest behind GenerateSeed.
func Compose(identity, category string, at time.Time, salt string) Seed {
	h := sha256.New()
	h.Write([]byte(identity))
	h.Write([]byte{'|'})
	h.Write([]byte(category))
	h.Write([]byte{'|'})
	h.Write([]byte(at.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{'|'})
	h.Write([]byte(salt))
	return Seed(hex.EncodeToString(h.Sum(nil)))
}

// ForIdentity returns an unsalted digest of key. Used where a caller wants the
// same parameters for the same input on every run.
func ForIdentity(key string) Seed {
	sum := sha256.Sum256([]byte(key))
	return Seed(hex.EncodeToString(sum[:]))
}

// Bytes returns the decoded digest. A seed that is not valid hex is used as
// raw bytes so that hand-written seeds still derive something.
func (s Seed) Bytes() []byte {
	if b, err := hex.DecodeString(string(s)); err == nil && len(b) > 0 {
		return b
	}
	return []byte(s)
}

// Short returns the first 12 characters of the seed, for display.
func (s Seed) Short() string {
	if len(s) <= 12 {
		return string(s)
	}
	return string(s[:12])
}

// Valid reports whether s looks like a digest produced by this package.
func (s Seed) Valid() bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(strings.ToLower(string(s)))
	return err == nil
}
