package matchmaking

import (
	"fmt"
	"strings"
)

type InquiryKind string

const (
	InquiryGeneral InquiryKind = "general"
	InquiryBuy     InquiryKind = "buy"
	InquiryTrade   InquiryKind = "trade"
)

// Inquiry is a pre-filled message for the owner of a matched card.
type Inquiry struct {
	ReceiverID    int64
	Subject       string
	Content       string
	RelatedCardID int64
}

// DraftInquiry fills a contact message from a forward match. Sending it is up to the caller.
func DraftInquiry(kind InquiryKind, inquirer string, m ForwardMatch) Inquiry {
	title := fmt.Sprintf("%s (%s)", m.Card.PlayerName, m.Variant.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", m.OwnerUsername)

	switch kind {
	case InquiryBuy:
		b.WriteString("I'd like to buy the following card of yours:\n\n")
	case InquiryTrade:
		b.WriteString("I'm interested in trading for the following card of yours:\n\n")
	default:
		kind = InquiryGeneral
		b.WriteString("I saw you have this card:\n\n")
	}

	fmt.Fprintf(&b, "Card: #%03d %s\n", m.Card.CardNumber, m.Card.PlayerName)
	fmt.Fprintf(&b, "Series: %s\n", m.Card.SeriesName)
	fmt.Fprintf(&b, "Variant: %s\n", m.Variant.Name)
	fmt.Fprintf(&b, "Condition: %s\n", m.Condition)

	switch kind {
	case InquiryBuy:
		price := "not set"
		if m.Price.Valid {
			price = m.Price.Decimal.StringFixed(2)
		}
		fmt.Fprintf(&b, "Current price: %s\n\n", price)
		b.WriteString("Is it still for sale? If so, could we agree on the price and the details?\n\n")
	case InquiryTrade:
		b.WriteString("\nIs there a card you are looking for in exchange? Happy to check my collection.\n\n")
	default:
		b.WriteString("\nWould you sell or trade it? If so, on what terms?\n\n")
	}
	fmt.Fprintf(&b, "Regards,\n%s", inquirer)

	subject := map[InquiryKind]string{
		InquiryGeneral: "Inquiry: ",
		InquiryBuy:     "Purchase inquiry: ",
		InquiryTrade:   "Trade inquiry: ",
	}[kind] + title

	return Inquiry{
		ReceiverID:    m.OwnerID,
		Subject:       subject,
		Content:       b.String(),
		RelatedCardID: m.UserCardID,
	}
}
