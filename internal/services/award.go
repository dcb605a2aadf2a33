package services

import "github.com/BOSTONE069/procurement-service/internal/models"

// LowestBid выбирает предложение с минимальной суммой. При равенстве сумм
// побеждает предложение, встреченное раньше: только строго меньшая сумма
// сменяет текущего победителя. Для пустого набора победителя нет.
func LowestBid(bids []models.Bid) (models.Bid, bool) {
	if len(bids) == 0 {
		return models.Bid{}, false
	}
	winner := bids[0]
	for _, bid := range bids[1:] {
		if bid.Amount < winner.Amount {
			winner = bid
		}
	}
	return winner, true
}
