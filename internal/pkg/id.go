package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxMatchID = 99999999

// GenerateMatchID - generates a unique identifier for the match history.
func GenerateMatchID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxMatchID))
	if err != nil {
		return "", fmt.Errorf("failed to generate match id: %w", err)
	}

	return n.String(), nil
}
