// Package ui contains the interactive prompt elements.
package ui

import (
	"github.com/charmbracelet/huh"
)

// Input shows a text input field with a custom validator.  A nil
// validator accepts anything, including an empty input.
func Input(msg, help string, validateFn func(s string) error) (string, error) {
	if validateFn == nil {
		validateFn = func(string) error { return nil }
	}
	var resp string
	if err := huh.NewInput().
		Title(msg).
		Description(help).
		Validate(validateFn).
		Value(&resp).
		Run(); err != nil {
		return "", err
	}
	return resp, nil
}

// Confirm asks a yes/no question.
func Confirm(msg, help string) (bool, error) {
	var b bool
	if err := huh.NewConfirm().
		Title(msg).
		Description(help).
		Value(&b).
		Run(); err != nil {
		return false, err
	}
	return b, nil
}
