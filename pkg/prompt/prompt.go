// Package prompt wraps the interactive terminal questions used when a
// station name is missing or ambiguous.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Survey asks questions on the controlling terminal.
type Survey struct{}

// Text asks for a free-form non-empty line of input.
func (Survey) Text(label string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: label}, &answer, survey.WithValidator(survey.Required))

	return answer, err
}

// Select asks the user to pick one of options and returns its index.
func (Survey) Select(label string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{Message: label, Options: options}, &index)

	return index, err
}
