package mini

import (
	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the user for input.
type prompter interface {
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
	Input(message string, suggest func(string) []string) (string, error)
}

type surveyPrompter struct {
	pageSize int
}

func (s surveyPrompter) Select(message string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: s.pageSize,
	}, &index)
	return index, err
}

func (s surveyPrompter) Input(message string, suggest func(string) []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Suggest: suggest,
	}, &answer)
	return answer, err
}
