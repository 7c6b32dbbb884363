package wallet

import (
	"fmt"

	"stampcard/internal/domain/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatBalance renders a card balance the way the program type presents it:
// "3/10" for stamps, "1,250" for points and "$12.50" for cashback, where
// cashback balances are stored in cents.
func FormatBalance(programType entity.ProgramType, balance, target int) string {
	switch programType {
	case entity.ProgramTypePoints:
		return message.NewPrinter(language.English).Sprintf("%d", balance)
	case entity.ProgramTypeCashback:
		return fmt.Sprintf("$%.2f", float64(balance)/100)
	case entity.ProgramTypeStamps:
	}

	return fmt.Sprintf("%d/%d", balance, target)
}

// BalanceLabel is the caption shown next to the balance.
func BalanceLabel(programType entity.ProgramType) string {
	switch programType {
	case entity.ProgramTypePoints:
		return "Points"
	case entity.ProgramTypeCashback:
		return "Cashback"
	case entity.ProgramTypeStamps:
	}

	return "Stamps"
}
