package banktransfer

import (
	"fmt"
	"strings"
)

// BankDetails identifies the account a customer says they paid into. It is
// copied by value onto the claim so later edits to a BankAccount do not
// rewrite history.
type BankDetails struct {
	BankName      string
	BankCode      string
	AccountNumber string
	AccountName   string
}

func (d BankDetails) Validate() error {
	if strings.TrimSpace(d.BankName) == "" {
		return fmt.Errorf("bank name is required")
	}
	if strings.TrimSpace(d.AccountNumber) == "" {
		return fmt.Errorf("account number is required")
	}
	if strings.TrimSpace(d.AccountName) == "" {
		return fmt.Errorf("account name is required")
	}
	return nil
}
