package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Select prompts the user to pick one of choices and returns the selection.
// Typing filters the choices by prefix.
func Select(label string, choices ...string) (string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			if len(input) == 0 {
				return false
			}

			return strings.HasPrefix(choices[index], input)
		},
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}
