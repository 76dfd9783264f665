package tag_seq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrLengthNotInteger  = errors.New("length is not an integer")
	ErrLengthNotPositive = errors.New("length must be greater than zero")
	ErrEmptyID           = errors.New("sequence ID cannot be empty")
	ErrPathInID          = errors.New("sequence ID cannot contain path elements")
	ErrSpaceInID         = errors.New("sequence ID cannot contain whitespace")
	ErrEmptyLabel        = errors.New("label cannot be empty")
	ErrLabelMarker       = errors.New("label cannot contain '>' or line breaks")
)

// ValidateLength parses a positive sequence length
func ValidateLength(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLengthNotInteger, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrLengthNotPositive, n)
	}
	return n, nil
}

// ValidateID trims raw and rejects values that are empty, contain
// whitespace (the header ID ends at the first space) or would escape
// the output directory once used as a file name base.
func ValidateID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	switch {
	case id == "":
		return "", ErrEmptyID
	case id == "." || id == ".." || strings.ContainsAny(id, `/\`):
		return "", fmt.Errorf("%w: %q", ErrPathInID, id)
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		return "", fmt.Errorf("%w: %q", ErrSpaceInID, id)
	}
	return id, nil
}

// ValidateLabel trims raw and rejects an empty label, or one that could
// start a sequence line with the header marker or break a line.
func ValidateLabel(raw string) (string, error) {
	label := strings.TrimSpace(raw)
	if label == "" {
		return "", ErrEmptyLabel
	}
	if strings.ContainsAny(label, ">\r\n") {
		return "", fmt.Errorf("%w: %q", ErrLabelMarker, label)
	}
	return label, nil
}

// CleanDescription trims surrounding whitespace; any description is valid
func CleanDescription(raw string) (string, error) {
	return strings.TrimSpace(raw), nil
}
