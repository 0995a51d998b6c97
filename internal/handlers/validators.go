package handlers

import (
	"github.com/finbook/finbook/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding tags used by the DTOs on gin's
// validator engine. Must be called once before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("transactionkind", func(fl validator.FieldLevel) bool {
		switch domain.TransactionKind(fl.Field().String()) {
		case domain.KindIncome, domain.KindExpense, domain.KindWindfall:
			return true
		}
		return false
	}); err != nil {
		return err
	}

	return v.RegisterValidation("accountkind", func(fl validator.FieldLevel) bool {
		switch domain.AccountKind(fl.Field().String()) {
		case domain.AccountCash, domain.AccountBank, domain.AccountCredit, domain.AccountSaving, domain.AccountWallet:
			return true
		}
		return false
	})
}
