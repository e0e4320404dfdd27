package qrstyle

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxLogoBytes is the inclusive upper bound for an uploaded logo.
const MaxLogoBytes = 1024 * 1024

var (
	ErrNotAnImage = errors.New("logo must be an image file")
	ErrTooLarge   = errors.New("logo must be 1MB or smaller")
)

// EncodeLogo converts an uploaded file into a self-contained data URL.
// The declared media type must be an image type and the payload must not
// exceed MaxLogoBytes; a file of exactly MaxLogoBytes is accepted.
func EncodeLogo(contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if len(data) > MaxLogoBytes {
		return "", ErrTooLarge
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

// LogoIntake holds the single active logo for a form session. Accepting a
// new file replaces the previous one; a rejected file leaves it untouched.
type LogoIntake struct {
	dataURL string
}

func (l *LogoIntake) Accept(contentType string, data []byte) (string, error) {
	encoded, err := EncodeLogo(contentType, data)
	if err != nil {
		return "", err
	}
	l.dataURL = encoded
	return encoded, nil
}

func (l *LogoIntake) Clear() {
	l.dataURL = ""
}

// Current returns the active logo data URL, or "" when none is set.
func (l *LogoIntake) Current() string {
	return l.dataURL
}
