package market

// Squad size limits. Teams start with 20 players and trading keeps every
// roster within [MinSquadSize, MaxSquadSize].
const (
	MinSquadSize = 15
	MaxSquadSize = 25
)

// CanList reports whether a team may put one of its players up for sale.
// The comparison is strictly greater-than: a 15-player squad selling one
// would drop below the floor, so 15 is reachable but never crossed.
func CanList(rosterSize int) bool {
	return rosterSize > MinSquadSize
}

// CanReceivePurchase reports whether the buyer has room for one more player.
func CanReceivePurchase(buyerRosterSize int) bool {
	return buyerRosterSize < MaxSquadSize
}

// SellerRemainsLegal reports whether the seller's squad is still legal once
// the sold player has left.
func SellerRemainsLegal(sellerRosterSizeAfterSale int) bool {
	return sellerRosterSizeAfterSale >= MinSquadSize
}

// PurchasePrice is what the buyer actually pays: 95% of the asking price,
// floored. Integer division floors toward zero on non-negative input.
func PurchasePrice(askingPrice int64) int64 {
	return askingPrice * 95 / 100
}
