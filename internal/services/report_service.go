package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedding_venue_backend/internal/models"
	"wedding_venue_backend/internal/reporting"
	"wedding_venue_backend/internal/repositories"
	"wedding_venue_backend/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// --- Custom Service Errors for Reports ---
var (
	ErrUnknownReportType = fmt.Errorf("%w: unknown report type", reporting.ErrValidation)
	ErrInvalidAsOf       = fmt.Errorf("%w: asOf must be a date formatted as YYYY-MM-DD", reporting.ErrValidation)
)

const asOfLayout = "2006-01-02"

// ReportService assembles report payloads for a period and its predecessor.
type ReportService interface {
	GenerateReport(ctx context.Context, req models.ReportRequest) (interface{}, error)
	SalesReport(ctx context.Context, period reporting.Period) (*models.SalesReport, error)
	PaymentsReport(ctx context.Context, period reporting.Period) (*models.PaymentsReport, error)
	FinancialStatement(ctx context.Context, period reporting.Period) (*models.FinancialStatement, error)
	CashFlowStatement(ctx context.Context, period reporting.Period) (*models.CashFlowStatement, error)
	AgingReport(ctx context.Context, period reporting.Period, asOf time.Time) (*models.AgingReport, error)
	MenuUsageReport(ctx context.Context, period reporting.Period) (*models.MenuUsageReport, error)
	InventoryUsageReport(ctx context.Context, period reporting.Period) (*models.InventoryUsageReport, error)
}

// ReportServiceOptions tunes report assembly.
type ReportServiceOptions struct {
	TopN     int
	Location *time.Location
	Now      func() time.Time
}

type reportService struct {
	repo     repositories.ReportRepository
	topN     int
	location *time.Location
	now      func() time.Time
}

// NewReportService creates a new instance of ReportService.
func NewReportService(repo repositories.ReportRepository, opts ReportServiceOptions) ReportService {
	s := &reportService{
		repo:     repo,
		topN:     opts.TopN,
		location: opts.Location,
		now:      opts.Now,
	}
	if s.topN <= 0 {
		s.topN = reporting.DefaultTopN
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ledgerNeeds selects which row sets a report reads.
type ledgerNeeds struct {
	weddings    bool
	packages    bool
	menuItems   bool
	allocations bool
	ingredients bool
}

var (
	financeNeeds   = ledgerNeeds{weddings: true, packages: true}
	salesNeeds     = ledgerNeeds{weddings: true, packages: true, menuItems: true}
	menuNeeds      = ledgerNeeds{menuItems: true}
	inventoryNeeds = ledgerNeeds{allocations: true, ingredients: true}
)

// GenerateReport validates the request and dispatches to the report it names.
// Validation happens before any ledger access.
func (s *reportService) GenerateReport(ctx context.Context, req models.ReportRequest) (interface{}, error) {
	reportType := strings.TrimSpace(req.ReportType)
	if !models.IsValidReportType(reportType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, req.ReportType)
	}
	period, err := reporting.ParsePeriod(req.Granularity, req.Value)
	if err != nil {
		return nil, err
	}

	switch models.ReportType(reportType) {
	case models.ReportTypeSales:
		return payload(s.SalesReport(ctx, period))
	case models.ReportTypePayments:
		return payload(s.PaymentsReport(ctx, period))
	case models.ReportTypeFinancialStatement:
		return payload(s.FinancialStatement(ctx, period))
	case models.ReportTypeCashFlow:
		return payload(s.CashFlowStatement(ctx, period))
	case models.ReportTypeReceivablesAging:
		asOf, err := s.parseAsOf(req.AsOf)
		if err != nil {
			return nil, err
		}
		return payload(s.AgingReport(ctx, period, asOf))
	case models.ReportTypeMenuUsage:
		return payload(s.MenuUsageReport(ctx, period))
	default:
		return payload(s.InventoryUsageReport(ctx, period))
	}
}

// payload drops typed nil pointers so a failed report is a nil interface.
func payload[T any](report *T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return report, nil
}

// parseAsOf reads an explicit asOf date; an empty value means today in the configured zone.
func (s *reportService) parseAsOf(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := s.now().In(s.location)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	asOf, err := time.Parse(asOfLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAsOf, value)
	}
	return asOf, nil
}

func (s *reportService) SalesReport(ctx context.Context, period reporting.Period) (*models.SalesReport, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, salesNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildSalesReport(period, current, previous, s.topN)
	logGenerated(models.ReportTypeSales, period, start)
	return &report, nil
}

func (s *reportService) PaymentsReport(ctx context.Context, period reporting.Period) (*models.PaymentsReport, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, financeNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildPaymentsReport(period, current, previous)
	logGenerated(models.ReportTypePayments, period, start)
	return &report, nil
}

func (s *reportService) FinancialStatement(ctx context.Context, period reporting.Period) (*models.FinancialStatement, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, financeNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildFinancialStatement(period, current, previous)
	logGenerated(models.ReportTypeFinancialStatement, period, start)
	return &report, nil
}

func (s *reportService) CashFlowStatement(ctx context.Context, period reporting.Period) (*models.CashFlowStatement, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, financeNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildCashFlowStatement(period, current, previous)
	logGenerated(models.ReportTypeCashFlow, period, start)
	return &report, nil
}

// AgingReport has no previous-period comparison, so only the current ledger is read.
func (s *reportService) AgingReport(ctx context.Context, period reporting.Period, asOf time.Time) (*models.AgingReport, error) {
	start := time.Now()
	current, _, err := s.loadLedgers(ctx, period, financeNeeds, false)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildAgingReport(period, current, asOf)
	logGenerated(models.ReportTypeReceivablesAging, period, start)
	return &report, nil
}

func (s *reportService) MenuUsageReport(ctx context.Context, period reporting.Period) (*models.MenuUsageReport, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, menuNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildMenuUsageReport(period, current, previous)
	logGenerated(models.ReportTypeMenuUsage, period, start)
	return &report, nil
}

func (s *reportService) InventoryUsageReport(ctx context.Context, period reporting.Period) (*models.InventoryUsageReport, error) {
	start := time.Now()
	current, previous, err := s.loadLedgers(ctx, period, inventoryNeeds, true)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildInventoryUsageReport(period, current, previous)
	logGenerated(models.ReportTypeInventoryUsage, period, start)
	return &report, nil
}

// loadLedgers fetches the needed row sets for the period, and for its predecessor when
// withPrevious is set and one exists, concurrently under one cancellable group.
// Any accessor failure fails the whole load.
func (s *reportService) loadLedgers(ctx context.Context, period reporting.Period, needs ledgerNeeds, withPrevious bool) (reporting.Ledger, reporting.Ledger, error) {
	var current, previous reporting.Ledger

	g, gctx := errgroup.WithContext(ctx)
	s.fetchLedger(gctx, g, period.Predicate(), needs, &current)
	if withPrevious {
		if prev, ok := period.Previous(); ok {
			s.fetchLedger(gctx, g, prev.Predicate(), needs, &previous)
		}
	}
	if err := g.Wait(); err != nil {
		return reporting.Ledger{}, reporting.Ledger{}, fmt.Errorf("loading ledger for %s %q: %w", period.Granularity, period.Value, err)
	}
	return current, previous, nil
}

// fetchLedger schedules one accessor call per needed row set. Each goroutine writes a
// distinct field of dst.
func (s *reportService) fetchLedger(ctx context.Context, g *errgroup.Group, pred reporting.Predicate, needs ledgerNeeds, dst *reporting.Ledger) {
	if needs.weddings {
		g.Go(func() (err error) {
			dst.Weddings, err = s.repo.ListWeddingInvoices(ctx, pred)
			return err
		})
	}
	if needs.packages {
		g.Go(func() (err error) {
			dst.Packages, err = s.repo.ListPackageAssignments(ctx, pred)
			return err
		})
	}
	if needs.menuItems {
		g.Go(func() (err error) {
			dst.MenuItems, err = s.repo.ListMenuItemAssignments(ctx, pred)
			return err
		})
	}
	if needs.allocations {
		g.Go(func() (err error) {
			dst.Allocations, err = s.repo.ListInventoryAllocations(ctx, pred)
			return err
		})
	}
	if needs.ingredients {
		g.Go(func() (err error) {
			dst.Ingredients, err = s.repo.ListIngredientConsumption(ctx, pred)
			return err
		})
	}
}

func logGenerated(reportType models.ReportType, period reporting.Period, start time.Time) {
	utils.LogDebug("Report generated", map[string]interface{}{
		"report_type": string(reportType),
		"granularity": string(period.Granularity),
		"value":       period.Value,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// IsValidationError reports whether err came from request validation.
func IsValidationError(err error) bool {
	return errors.Is(err, reporting.ErrValidation)
}
