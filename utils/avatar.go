package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/go-resty/resty/v2"
)

// FetchDefaultAvatar downloads a generated placeholder avatar for the given
// display name from the avatar service and stores it under destDir.
// Returns the stored filename.
func FetchDefaultAvatar(apiURL, name, destDir string) (string, error) {
	if apiURL == "" {
		return "", fmt.Errorf("avatar service is not configured")
	}

	client := resty.New()

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"name":       name,
			"background": "EEF6FF",
			"color":      "3A63ED",
			"format":     "png",
			"size":       "256",
		}).
		Get(apiURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("avatar service returned status %d", resp.StatusCode())
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(destDir, filename), resp.Body(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
