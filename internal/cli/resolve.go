package cli

import (
	"fmt"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// resolveModID resolves user input to a mod ID. Accepted forms, in order:
// exact ID, unique ID prefix, case-insensitive unique title match.
func resolveModID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("mod ID is required")
	}

	mods := app.Store.Mods()

	for i := range mods {
		if mods[i].ID == input {
			return mods[i].ID, nil
		}
	}

	var matches []string
	for i := range mods {
		if strings.HasPrefix(mods[i].ID, input) {
			matches = append(matches, mods[i].ID)
		}
	}
	if len(matches) == 0 {
		for i := range mods {
			if strings.EqualFold(mods[i].Title, input) {
				matches = append(matches, mods[i].ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("mod not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("mod %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCreatorID resolves user input to a creator ID: exact ID, unique ID
// prefix, then case-insensitive unique name match.
func resolveCreatorID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("creator ID is required")
	}

	creators := app.Store.Creators()

	for _, c := range creators {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range creators {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	if len(matches) == 0 {
		for _, c := range creators {
			if strings.EqualFold(c.Name, input) {
				matches = append(matches, c.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("creator not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("creator %q is ambiguous (%d matches)", input, len(matches))
	}
}

// creatorNames builds the ID-to-name index the list formatters use.
func creatorNames(creators []domain.Creator) map[string]string {
	names := make(map[string]string, len(creators))
	for _, c := range creators {
		names[c.ID] = c.Name
	}
	return names
}
