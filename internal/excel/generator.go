package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/orders-service/internal/model"
)

const (
	OrdersSheet = "Orders"
	OffersSheet = "Offers"
)

var orderHeaders = []string{
	"ID",
	"Name",
	"Description",
	"Start date",
	"End date",
	"Address",
	"Price",
	"Customer ID",
	"Executor ID",
	"Offers",
}

var offerHeaders = []string{"ID", "Order ID", "Executor ID"}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.OrderReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return nil, err
	}
	if err := g.writeOrders(file, report); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(OffersSheet); err != nil {
		return nil, err
	}
	if err := g.writeOffers(file, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeOrders(file *excelize.File, report model.OrderReport) error {
	if err := writeHeader(file, OrdersSheet, orderHeaders); err != nil {
		return err
	}

	for i, row := range report.Rows {
		order := row.Order
		values := []interface{}{
			order.ID,
			order.Name,
			stringValue(order.Description),
			stringValue(order.StartDate),
			stringValue(order.EndDate),
			stringValue(order.Address),
			intValue(order.Price),
			idValue(order.CustomerID),
			idValue(order.ExecutorID),
			row.OfferCount,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(OrdersSheet, cell, &values); err != nil {
			return fmt.Errorf("write order %d: %w", order.ID, err)
		}
	}

	totalRow := len(report.Rows) + 3
	_ = file.SetCellValue(OrdersSheet, fmt.Sprintf("F%d", totalRow), "Total")
	_ = file.SetCellValue(OrdersSheet, fmt.Sprintf("G%d", totalRow), report.TotalPrice)

	_ = file.SetColWidth(OrdersSheet, "A", "A", 8)
	_ = file.SetColWidth(OrdersSheet, "B", "C", 36)
	_ = file.SetColWidth(OrdersSheet, "D", "E", 14)
	_ = file.SetColWidth(OrdersSheet, "F", "F", 32)
	_ = file.SetColWidth(OrdersSheet, "G", "J", 12)
	return nil
}

func (g *Generator) writeOffers(file *excelize.File, report model.OrderReport) error {
	if err := writeHeader(file, OffersSheet, offerHeaders); err != nil {
		return err
	}

	for i, offer := range report.Offers {
		values := []interface{}{offer.ID, idValue(offer.OrderID), idValue(offer.ExecutorID)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(OffersSheet, cell, &values); err != nil {
			return fmt.Errorf("write offer %d: %w", offer.ID, err)
		}
	}

	_ = file.SetColWidth(OffersSheet, "A", "C", 14)
	return nil
}

func writeHeader(file *excelize.File, sheet string, headers []string) error {
	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return file.SetCellStyle(sheet, "A1", last, style)
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func intValue(value *int) interface{} {
	if value == nil {
		return ""
	}
	return *value
}

func idValue(value *uint) interface{} {
	if value == nil {
		return ""
	}
	return *value
}
