package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New()

// normalizeCompetitionID accepts numeric ids ("2021") and codes ("PL").
func normalizeCompetitionID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if err := inputValidator.Var(id, "required,alphanum,max=16"); err != nil {
		return "", fmt.Errorf("%w: competition id %q", ErrInvalidInput, raw)
	}
	return id, nil
}

func parsePlayerID(raw string) (int64, error) {
	return parseEntityID("player", raw)
}

func parseEntityID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s id %q", ErrInvalidInput, kind, raw)
	}
	return id, nil
}
