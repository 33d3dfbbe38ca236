package bindings

import (
	"os"
	"strings"
)

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func indexOf(haystack, needle string) int {
	return strings.Index(haystack, needle)
}
