package domain

import (
	"fmt"
	"strings"
)

// DateLayout is the date-only layout every persisted date uses.
const DateLayout = "2006-01-02"

// Mod is a single commissioned work item: a game modification ordered by a
// creator, with a price, payment history, checklist, and two independent
// status tracks (production work and client approval).
type Mod struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	CreatorID      string          `json:"creatorId"`
	TotalPrice     int             `json:"totalPrice"`
	PaymentRecords []PaymentRecord `json:"paymentRecords"`
	WorkStatus     WorkStatus      `json:"workStatus"`
	ApprovalStatus ApprovalStatus  `json:"approvalStatus"`
	ApprovalNote   *ApprovalNote   `json:"approvalNote,omitempty"`
	CreatedDate    string          `json:"createdDate"`
	StartDate      string          `json:"startDate,omitempty"`
	CompletedDate  string          `json:"completedDate,omitempty"`
	Todos          []Todo          `json:"todos"`
}

// PaymentRecord is one payment entry against a mod. Amounts are whole
// currency units; Date is the entry date, not necessarily the payment date.
type PaymentRecord struct {
	ID          string `json:"id"`
	Amount      int    `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Todo is a checklist item on a mod.
type Todo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

// ApprovalNote records the client's sign-off. A mod holds at most one;
// re-approving replaces it.
type ApprovalNote struct {
	ID           string `json:"id"`
	Note         string `json:"note"`
	ApprovedDate string `json:"approvedDate"`
}

// Validate checks the fields a mod needs at creation time.
func (m *Mod) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("mod title is required")
	}
	if m.CreatorID == "" {
		return fmt.Errorf("mod creator is required")
	}
	if m.TotalPrice < 0 {
		return fmt.Errorf("total price must not be negative (got %d)", m.TotalPrice)
	}
	return nil
}

// AmountPaid returns the sum of all recorded payments.
func (m *Mod) AmountPaid() int {
	total := 0
	for _, p := range m.PaymentRecords {
		total += p.Amount
	}
	return total
}

// AmountDue returns the outstanding balance: TotalPrice minus payments.
func (m *Mod) AmountDue() int {
	return m.TotalPrice - m.AmountPaid()
}

// TodoProgress returns done and total checklist counts.
func (m *Mod) TodoProgress() (done, total int) {
	for _, t := range m.Todos {
		if t.IsDone {
			done++
		}
	}
	return done, len(m.Todos)
}

// DisplayID returns a short identifier for display.
func (m *Mod) DisplayID() string {
	if len(m.ID) >= 8 {
		return m.ID[:8]
	}
	return m.ID
}
