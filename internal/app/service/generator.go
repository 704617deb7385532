// Package service contains the link domain logic: code generation,
// resolution, click classification and recording, and analytics
// aggregation over the click history.
package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

// CodeAlphabet is the 62-symbol set short codes are drawn from.
const CodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the length of every generated code. 62^6 possible codes
// keep collisions rare but not impossible, hence the bounded retry.
const CodeLength = 6

// CodeAttempts bounds the generate-check-insert loop. Exceeding it fails
// the creation instead of looping indefinitely.
const CodeAttempts = 10

var alphabetSize = big.NewInt(int64(len(CodeAlphabet)))

// CodeGenerator produces random short codes and checks them against the
// persisted code set.
type CodeGenerator struct {
	store storage.Store
}

func NewCodeGenerator(store storage.Store) *CodeGenerator {
	return &CodeGenerator{store: store}
}

// Generate draws a CodeLength-character code, each character uniform
// over CodeAlphabet.
func (g *CodeGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)

	for i := 0; i < CodeLength; i++ {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(CodeAlphabet[idx.Int64()])
	}

	return b.String(), nil
}

// IsUnique reports whether the code is absent from the store.
func (g *CodeGenerator) IsUnique(ctx context.Context, code string) (bool, error) {
	exists, err := g.store.CodeExists(ctx, code)
	if err != nil {
		return false, err
	}

	return !exists, nil
}
