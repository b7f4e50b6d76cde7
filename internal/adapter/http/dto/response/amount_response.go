package response

import "docecalc/internal/domain/money"

// AmountResponse carries a monetary value twice: Amount is the machine
// decimal ("1234.56"), Display the pt-BR text shown in form fields
// ("R$ 1.234,56").
type AmountResponse struct {
	Amount  string `json:"amount"`
	Display string `json:"display"`
}

func FromMoney(m money.Money) AmountResponse {
	return AmountResponse{
		Amount:  m.String(),
		Display: money.FormatWithSymbol(m),
	}
}
