// Package interactive provides terminal user interface components
package interactive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption represents a menu item with its associated action
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

// ChartOption is one selectable chart.
type ChartOption struct {
	Name        string
	Description string
}

var (
	// ErrExit is returned when the user chooses to exit
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNothingSelected is returned when the chart picker is confirmed empty
	ErrNothingSelected = errors.New("no charts selected")
)

// askOne is swapped out in tests.
var askOne = func(p survey.Prompt, response interface{}) error {
	return survey.AskOne(p, response)
}

const exitChoice = "Exit"

// ShowMainMenu displays the main menu and handles user selection
func ShowMainMenu(options []MenuOption) error {
	choices := make([]string, 0, len(options)+1)
	optionMap := make(map[string]MenuOption)

	for _, opt := range options {
		choice := fmt.Sprintf("%s - %s", opt.Name, opt.Description)
		choices = append(choices, choice)
		optionMap[choice] = opt
	}

	choices = append(choices, exitChoice)

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: choices,
	}

	if err := askOne(prompt, &selected); err != nil {
		return ErrExit
	}

	if selected == exitChoice {
		return ErrExit
	}

	if option, ok := optionMap[selected]; ok {
		return option.Action()
	}

	return ErrInvalidSelection
}

// SelectCharts shows a multi-select of charts, all checked by default, and
// returns the chosen names in the order they were offered.
func SelectCharts(options []ChartOption) ([]string, error) {
	choices := make([]string, 0, len(options))
	for _, opt := range options {
		choices = append(choices, chartChoice(opt))
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message:  "Which charts should be rendered?",
		Options:  choices,
		Default:  choices,
		PageSize: len(choices),
	}

	if err := askOne(prompt, &selected); err != nil {
		return nil, ErrExit
	}

	names := chartNames(options, selected)
	if len(names) == 0 {
		return nil, ErrNothingSelected
	}

	return names, nil
}

func chartChoice(opt ChartOption) string {
	if opt.Description == "" {
		return opt.Name
	}

	return fmt.Sprintf("%s - %s", opt.Name, opt.Description)
}

func chartNames(options []ChartOption, selected []string) []string {
	picked := make(map[string]bool, len(selected))
	for _, s := range selected {
		picked[strings.TrimSpace(s)] = true
	}

	names := make([]string, 0, len(selected))
	for _, opt := range options {
		if picked[chartChoice(opt)] {
			names = append(names, opt.Name)
		}
	}

	return names
}

// PauseForEnter waits for the user to press Enter
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks for user confirmation
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = askOne(prompt, &confirmed)
	return confirmed
}
