package mapping

import (
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/google/uuid"
)

// ToModelBankAccount converts an account snapshot to its row, without the ledger.
func ToModelBankAccount(s domain.BankAccountSnapshot) models.BankAccount {
	return models.BankAccount{
		AccountID:     s.ID,
		UserID:        s.UserID,
		AccountName:   s.AccountName,
		BankName:      s.BankName,
		AccountNumber: s.AccountNumber,
		CurrencyCode:  s.CurrencyCode,
		Balance:       s.Balance,
		IsActive:      s.IsActive,
		TimestampFields: models.TimestampFields{
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		},
		Version: s.Version,
	}
}

// ToModelTransactions converts the ledger of an account snapshot to rows, numbering them
// by posting order.
func ToModelTransactions(s domain.BankAccountSnapshot) []models.Transaction {
	rows := make([]models.Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		var sub *uuid.UUID
		if t.SubCategoryID != uuid.Nil {
			id := t.SubCategoryID
			sub = &id
		}
		rows[i] = models.Transaction{
			TransactionID:   t.ID,
			AccountID:       s.ID,
			Position:        i,
			TransactionType: models.TransactionType(t.Type),
			Amount:          t.Amount,
			CategoryID:      t.CategoryID,
			SubCategoryID:   sub,
			Description:     t.Description,
			TransactionDate: t.TransactionDate,
			CreatedAt:       t.CreatedAt,
		}
	}
	return rows
}

// ToBankAccountSnapshot rebuilds a snapshot from the account row and its ledger rows,
// which must already be in posting order.
func ToBankAccountSnapshot(m models.BankAccount, txs []models.Transaction) domain.BankAccountSnapshot {
	s := domain.BankAccountSnapshot{
		ID:            m.AccountID,
		UserID:        m.UserID,
		AccountName:   m.AccountName,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		CurrencyCode:  m.CurrencyCode,
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
		Transactions:  make([]domain.TransactionSnapshot, len(txs)),
	}
	for i, t := range txs {
		var sub uuid.UUID
		if t.SubCategoryID != nil {
			sub = *t.SubCategoryID
		}
		s.Transactions[i] = domain.TransactionSnapshot{
			ID:              t.TransactionID,
			Type:            domain.TransactionType(t.TransactionType),
			Amount:          t.Amount,
			CategoryID:      t.CategoryID,
			SubCategoryID:   sub,
			Description:     t.Description,
			TransactionDate: t.TransactionDate,
			CreatedAt:       t.CreatedAt,
		}
	}
	return s
}
