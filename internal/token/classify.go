package token

import "taxtoken/pkg/domain"

// Classify derives the trade direction of a transfer from the pair registry.
// The recipient is checked first, so a transfer between two pairs is a sell
// and pays sell tax.
func Classify(senderIsPair, recipientIsPair bool) domain.Classification {
	switch {
	case recipientIsPair:
		return domain.Sell
	case senderIsPair:
		return domain.Buy
	default:
		return domain.Normal
	}
}
