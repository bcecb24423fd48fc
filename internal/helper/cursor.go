package helper

import (
	"encoding/base64"
	"fmt"
	"strings"
)

func DecodeCursor(cursor string, delimiter string) (string, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", "", fmt.Errorf("invalid cursor encoding")
	}

	decodedString := string(decodedBytes)
	parts := strings.Split(decodedString, delimiter)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid cursor format")
	}

	return parts[0], parts[1], nil
}

func EncodeCursor(firstPart string, secondPart string, delimiter string) string {
	cursorString := fmt.Sprintf("%s%s%s", firstPart, delimiter, secondPart)
	return base64.URLEncoding.EncodeToString([]byte(cursorString))
}
