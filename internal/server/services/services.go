// Package services contains server-side business logic. Services take the
// pool and a RepositoryManager, validate input, and open transactions where
// several statements must agree.
package services

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/google/uuid"
)

// newID generates primary keys. Tests replace it.
var newID = func() string { return uuid.NewString() }

// maxCost is the first value NUMERIC(14,2) cannot hold.
const maxCost = 1e12

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user_id is required", common.ErrorValidation)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: user_id %q is not a valid id", common.ErrorValidation, userID)
	}
	return nil
}

// validEntityID reports whether id can name a stored row. Ids that cannot
// are treated as missing rather than malformed.
func validEntityID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// normalizeCost parses a user-supplied cost and renders it with two
// decimals, rounding half away from zero on the decimal digits. A comma is
// accepted as the decimal separator.
func normalizeCost(s string) (string, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return "", fmt.Errorf("%w: custo is required", common.ErrorValidation)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: custo %q is not a number", common.ErrorValidation, s)
	}
	if v < 0 {
		return "", fmt.Errorf("%w: custo must not be negative", common.ErrorValidation)
	}

	// Round the shortest decimal form of v, not its binary value: 1.005 -> 1.01.
	exact, _ := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	out := exact.FloatString(2)
	rounded, _ := new(big.Rat).SetString(out)
	if rounded.Cmp(big.NewRat(maxCost, 1)) >= 0 {
		return "", fmt.Errorf("%w: custo is too large", common.ErrorValidation)
	}

	return out, nil
}
