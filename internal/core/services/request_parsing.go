package services

import (
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func moneyFromRequest(amount decimal.Decimal, currencyCode string) (domain.Money, error) {
	currency, err := domain.CurrencyFromCode(currencyCode)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(amount, currency)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &domain.Error{Kind: domain.KindInvalidArgument, Field: field, Message: field + " is not a valid UUID"}
	}
	return id, nil
}

func entryParamsFromRequest(req dto.RecordTransactionRequest) (domain.EntryParams, error) {
	amount, err := moneyFromRequest(req.Amount, req.CurrencyCode)
	if err != nil {
		return domain.EntryParams{}, err
	}
	categoryID, err := parseID("categoryID", req.CategoryID)
	if err != nil {
		return domain.EntryParams{}, err
	}

	p := domain.EntryParams{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: req.Description,
	}
	if req.SubCategoryID != nil && *req.SubCategoryID != "" {
		if p.SubCategoryID, err = parseID("subCategoryID", *req.SubCategoryID); err != nil {
			return domain.EntryParams{}, err
		}
	}
	if req.TransactionDate != nil {
		p.Date = *req.TransactionDate
	}
	return p, nil
}
