package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
)

const dateLayout = "2006-01-02"

// Creator options
type CreatorOption func(*domain.Creator)

func WithEmail(email string) CreatorOption {
	return func(c *domain.Creator) {
		c.Email = email
	}
}

func WithPhone(phone string) CreatorOption {
	return func(c *domain.Creator) {
		c.Phone = phone
	}
}

func NewTestCreator(name string, opts ...CreatorOption) domain.Creator {
	c := domain.Creator{
		ID:          uuid.NewString(),
		Name:        name,
		CreatedDate: time.Now().Format(dateLayout),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Mod options
type ModOption func(*domain.Mod)

func WithTotalPrice(price int) ModOption {
	return func(m *domain.Mod) {
		m.TotalPrice = price
	}
}

func WithWorkStatus(s domain.WorkStatus) ModOption {
	return func(m *domain.Mod) {
		m.WorkStatus = s
	}
}

func WithApprovalStatus(s domain.ApprovalStatus) ModOption {
	return func(m *domain.Mod) {
		m.ApprovalStatus = s
	}
}

func WithPayment(amount int, description string) ModOption {
	return func(m *domain.Mod) {
		m.PaymentRecords = append(m.PaymentRecords, domain.PaymentRecord{
			ID:          uuid.NewString(),
			Amount:      amount,
			Date:        time.Now().Format(dateLayout),
			Description: description,
		})
	}
}

func WithTodo(title string, done bool) ModOption {
	return func(m *domain.Mod) {
		m.Todos = append(m.Todos, domain.Todo{
			ID:     uuid.NewString(),
			Title:  title,
			IsDone: done,
		})
	}
}

func NewTestMod(title, creatorID string, opts ...ModOption) domain.Mod {
	m := domain.Mod{
		ID:             uuid.NewString(),
		Title:          title,
		CreatorID:      creatorID,
		TotalPrice:     1000,
		PaymentRecords: []domain.PaymentRecord{},
		WorkStatus:     domain.WorkPending,
		ApprovalStatus: domain.ApprovalPending,
		CreatedDate:    time.Now().Format(dateLayout),
		Todos:          []domain.Todo{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
