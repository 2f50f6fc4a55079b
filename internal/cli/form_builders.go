package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
)

func ledgerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// creatorForm collects the fields for a new creator.
func creatorForm(name, email, phone, address *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired("name")),
			huh.NewInput().Title("Email (optional)").Value(email),
			huh.NewInput().Title("Phone (optional)").Value(phone),
			huh.NewInput().Title("Address (optional)").Value(address),
		),
	).WithTheme(ledgerHuhTheme()).WithShowHelp(false)
}

// modForm collects the fields for a new mod, with a creator picker built
// from the current collection.
func modForm(app *App, title, creator, price *string) *huh.Form {
	creators := app.Store.Creators()
	options := make([]huh.Option[string], 0, len(creators))
	for _, c := range creators {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(title).Validate(validateRequired("title")),
			huh.NewSelect[string]().Title("Creator").Options(options...).Value(creator),
			huh.NewInput().Title("Total price").Placeholder("5000").Value(price).Validate(validatePositiveInt),
		),
	).WithTheme(ledgerHuhTheme()).WithShowHelp(false)
}

// approvalNoteForm collects the client sign-off note.
func approvalNoteForm(note *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Sign-off note").Value(note).Validate(validateRequired("note")),
		),
	).WithTheme(ledgerHuhTheme()).WithShowHelp(false)
}
