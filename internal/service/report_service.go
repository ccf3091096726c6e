package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

type ExcelGenerator interface {
	Generate(report model.OrderReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.OrderReport) ([]byte, error)
}

type ReportService struct {
	store *repository.Store
	excel ExcelGenerator
	pdf   PDFGenerator
	now   func() time.Time
}

type GenerateReportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(store *repository.Store, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{
		store: store,
		excel: excel,
		pdf:   pdf,
		now:   time.Now,
	}
}

// BuildOrderReport snapshots all orders and offers in one transaction.
func (s *ReportService) BuildOrderReport(ctx context.Context) (model.OrderReport, error) {
	report := model.OrderReport{GeneratedAt: s.now().UTC()}

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		orders, err := tx.Orders.List(ctx)
		if err != nil {
			return err
		}
		offers, err := tx.Offers.List(ctx)
		if err != nil {
			return err
		}

		counts := make(map[uint]int, len(orders))
		for _, offer := range offers {
			if offer.OrderID != nil {
				counts[*offer.OrderID]++
			}
		}

		report.Rows = make([]model.OrderReportRow, 0, len(orders))
		for _, order := range orders {
			report.Rows = append(report.Rows, model.OrderReportRow{Order: order, OfferCount: counts[order.ID]})
			if order.Price != nil {
				report.TotalPrice += int64(*order.Price)
			}
		}
		report.Offers = offers
		return nil
	})
	if err != nil {
		return model.OrderReport{}, err
	}
	return report, nil
}

func (s *ReportService) GenerateReport(ctx context.Context) (*GenerateReportResult, error) {
	report, err := s.BuildOrderReport(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, fmt.Errorf("generate xlsx: %w", err)
	}
	return &GenerateReportResult{
		FileName: reportFileName(report.GeneratedAt, "xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) GenerateReportPDF(ctx context.Context) (*GenerateReportResult, error) {
	report, err := s.BuildOrderReport(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(report)
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return &GenerateReportResult{
		FileName: reportFileName(report.GeneratedAt, "pdf"),
		Content:  content,
	}, nil
}

func reportFileName(at time.Time, ext string) string {
	return fmt.Sprintf("orders_%s.%s", at.Format("20060102_150405"), ext)
}
