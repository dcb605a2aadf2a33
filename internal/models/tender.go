package models

import "time"

type (
	Identity     string // Идентичность вызывающего (заказчик или участник)
	TenderStatus string // Статус тендера
)

const (
	OpenTender TenderStatus = "Open" // Тендер открыт для предложений
	// ClosedTender объявлен для совместимости с исходным перечислением,
	// но ни одна операция его не выставляет.
	ClosedTender  TenderStatus = "Closed"
	AwardedTender TenderStatus = "Awarded" // Тендер присуждён победителю
)

// Tender представляет модель тендера.
type Tender struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Issuer      Identity     `json:"issuer"`
	Status      TenderStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TenderRequest представляет структуру запроса для создания тендера.
type TenderRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
