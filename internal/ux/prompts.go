package ux

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// Confirm prompts the user for yes/no confirmation
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(os.Stdin)

	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Print(prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}

// PromptForString prompts the user for a string value
func PromptForString(message string, defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)

	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", message, defaultValue)
	} else {
		fmt.Printf("%s: ", message)
	}

	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return defaultValue
	}

	return response
}

// PromptForPassword reads a password from the terminal without echo.
// Falls back to a plain line read when stdin is not a terminal, so
// piped input still works.
func PromptForPassword(message string) (string, error) {
	fmt.Printf("%s: ", message)

	fd := int(os.Stdin.Fd())
	if terminal.IsTerminal(fd) {
		defer fmt.Println()
		raw, err := terminal.ReadPassword(fd)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
