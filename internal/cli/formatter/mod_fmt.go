package formatter

import (
	"fmt"
	"strings"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

// FormatModList renders a styled mod list inside a bordered box.
// creatorNames maps creator IDs to display names; unknown IDs fall back to
// a truncated ID.
func FormatModList(mods []domain.Mod, creatorNames map[string]string) string {
	headers := []string{"ID", "TITLE", "CREATOR", "WORK", "APPROVAL", "PRICE", "DUE"}
	rows := make([][]string, 0, len(mods))

	for i := range mods {
		m := &mods[i]
		creator, ok := creatorNames[m.CreatorID]
		if !ok {
			creator = m.CreatorID
			if len(creator) > 8 {
				creator = creator[:8]
			}
		}

		rows = append(rows, []string{
			TruncID(m.ID),
			Bold(m.Title),
			StylePurple.Render(creator),
			WorkStatusPill(m.WorkStatus),
			ApprovalPill(m.ApprovalStatus),
			Money(m.TotalPrice),
			DuePill(m.AmountDue()),
		})
	}

	return RenderBox("Mods", RenderTable(headers, rows))
}

// FormatModInspect renders the full detail card for one mod.
func FormatModInspect(m *domain.Mod, creatorName string) string {
	var b strings.Builder

	b.WriteString(Header(m.Title))
	b.WriteString("\n\n")

	writeField(&b, "ID", Dim(m.ID))
	writeField(&b, "Creator", StylePurple.Render(creatorName))
	writeField(&b, "Work", WorkStatusPill(m.WorkStatus))
	writeField(&b, "Approval", ApprovalPill(m.ApprovalStatus))
	writeField(&b, "Price", Money(m.TotalPrice))
	writeField(&b, "Paid", StyleGreen.Render(Money(m.AmountPaid())))
	writeField(&b, "Due", DuePill(m.AmountDue()))
	writeField(&b, "Created", HumanDate(m.CreatedDate))
	if m.StartDate != "" {
		writeField(&b, "Started", HumanDate(m.StartDate))
	}
	if m.CompletedDate != "" {
		writeField(&b, "Completed", HumanDate(m.CompletedDate))
	}
	if m.ApprovalNote != nil {
		writeField(&b, "Sign-off", fmt.Sprintf("%s %s", m.ApprovalNote.Note, Dim("("+HumanDate(m.ApprovalNote.ApprovedDate)+")")))
	}

	if len(m.PaymentRecords) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Payments"))
		b.WriteString("\n\n")
		rows := make([][]string, 0, len(m.PaymentRecords))
		for _, p := range m.PaymentRecords {
			rows = append(rows, []string{
				TruncID(p.ID),
				Money(p.Amount),
				HumanDate(p.Date),
				p.Description,
			})
		}
		b.WriteString(RenderTable([]string{"ID", "AMOUNT", "DATE", "DESCRIPTION"}, rows))
	}

	if len(m.Todos) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Checklist"))
		b.WriteString("\n\n")
		done, total := m.TodoProgress()
		b.WriteString(TodoProgress(done, total))
		b.WriteString("\n\n")
		for _, td := range m.Todos {
			mark := StyleDim.Render("[ ]")
			title := td.Title
			if td.IsDone {
				mark = StyleGreen.Render("[x]")
				title = Dim(title)
			}
			fmt.Fprintf(&b, "  %s %s %s\n", mark, title, TruncID(td.ID))
		}
	}

	return RenderBox("", b.String())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value)
}
