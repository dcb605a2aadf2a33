package models

import "time"

// Bid представляет модель предложения. Предложения никогда не изменяются
// и не удаляются после создания.
type Bid struct {
	TenderId    string    `json:"tenderId"`
	Bidder      Identity  `json:"bidder"`
	Amount      int64     `json:"amount"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// BidRequest представляет структуру запроса для подачи предложения.
type BidRequest struct {
	TenderId string `json:"tenderId"`
	Amount   int64  `json:"amount"`
}

// Award представляет присуждённый тендер вместе с выигравшим предложением.
// Модель всегда вычисляется по запросу и нигде не хранится.
type Award struct {
	ID         string `json:"id"`
	Tender     Tender `json:"tender"`
	WinningBid Bid    `json:"winningBid"`
}
