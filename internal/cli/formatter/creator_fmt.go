package formatter

import (
	"strconv"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// FormatCreatorList renders a styled creator list inside a bordered box.
// dues maps creator IDs to their outstanding balance across all mods.
func FormatCreatorList(creators []domain.Creator, modCounts map[string]int, dues map[string]int) string {
	headers := []string{"ID", "NAME", "CONTACT", "MODS", "DUE"}
	rows := make([][]string, 0, len(creators))

	for _, c := range creators {
		contact := c.Email
		if contact == "" {
			contact = c.Phone
		}
		if contact == "" {
			contact = "--"
		}

		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			Dim(contact),
			strconv.Itoa(modCounts[c.ID]),
			DuePill(dues[c.ID]),
		})
	}

	return RenderBox("Creators", RenderTable(headers, rows))
}

// FormatCreatorInspect renders one creator with their mods and total due.
func FormatCreatorInspect(c *domain.Creator, mods []domain.Mod, totalDue int) string {
	var b strings.Builder

	b.WriteString(Header(c.Name))
	b.WriteString("\n\n")

	writeField(&b, "ID", Dim(c.ID))
	if c.Email != "" {
		writeField(&b, "Email", c.Email)
	}
	if c.Phone != "" {
		writeField(&b, "Phone", c.Phone)
	}
	if c.Address != "" {
		writeField(&b, "Address", c.Address)
	}
	writeField(&b, "Client since", HumanDate(c.CreatedDate))
	writeField(&b, "Total due", DuePill(totalDue))

	if len(mods) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Mods"))
		b.WriteString("\n\n")
		rows := make([][]string, 0, len(mods))
		for i := range mods {
			m := &mods[i]
			rows = append(rows, []string{
				TruncID(m.ID),
				Bold(m.Title),
				WorkStatusPill(m.WorkStatus),
				Money(m.TotalPrice),
				DuePill(m.AmountDue()),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "TITLE", "WORK", "PRICE", "DUE"}, rows))
	}

	return RenderBox("", b.String())
}
