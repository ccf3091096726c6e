package model

import "time"

type OrderReportRow struct {
	Order      Order
	OfferCount int
}

type OrderReport struct {
	GeneratedAt time.Time
	Rows        []OrderReportRow
	Offers      []Offer
	TotalPrice  int64
}
