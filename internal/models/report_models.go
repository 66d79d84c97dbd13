package models

// ReportType names one of the report payloads the engine can assemble.
type ReportType string

const (
	ReportTypeSales              ReportType = "sales"
	ReportTypePayments           ReportType = "payments"
	ReportTypeFinancialStatement ReportType = "financial_statement"
	ReportTypeCashFlow           ReportType = "cash_flow"
	ReportTypeReceivablesAging   ReportType = "accounts_receivable_aging"
	ReportTypeMenuUsage          ReportType = "menu_usage"
	ReportTypeInventoryUsage     ReportType = "inventory_usage"
)

// ReportTypes lists every report the engine can assemble.
var ReportTypes = []ReportType{
	ReportTypeSales,
	ReportTypePayments,
	ReportTypeFinancialStatement,
	ReportTypeCashFlow,
	ReportTypeReceivablesAging,
	ReportTypeMenuUsage,
	ReportTypeInventoryUsage,
}

// IsValidReportType checks if the provided string names a known report.
func IsValidReportType(reportType string) bool {
	for _, t := range ReportTypes {
		if string(t) == reportType {
			return true
		}
	}
	return false
}

// ReportRequest holds the parameters for requesting a report.
// Granularity/Value format checks are registered as a struct-level validation in handlers.
type ReportRequest struct {
	ReportType  string `json:"reportType" form:"-" binding:"required,oneof=sales payments financial_statement cash_flow accounts_receivable_aging menu_usage inventory_usage"`
	Granularity string `json:"granularity" form:"granularity" binding:"required,oneof=day month year"`
	Value       string `json:"value" form:"value"`
	AsOf        string `json:"asOf" form:"asOf" binding:"omitempty,datetime=2006-01-02"` // Only used by aging
}

// PeriodRef identifies a reporting period on the wire.
type PeriodRef struct {
	Period string `json:"period"`
	Value  string `json:"value"`
}

// SalesReport summarises bookings and package/menu sales for a period.
type SalesReport struct {
	Period                    string          `json:"period"`
	Value                     string          `json:"value"`
	PreviousPeriod            *PeriodRef      `json:"previousPeriod"`
	TotalRevenue              float64         `json:"totalRevenue"`
	TotalCost                 float64         `json:"totalCost"`
	NetProfit                 float64         `json:"netProfit"`
	ProfitMarginPercent       float64         `json:"profitMarginPercent"`
	WeddingCount              int             `json:"weddingCount"`
	AverageRevenuePerWedding  float64         `json:"averageRevenuePerWedding"`
	PreviousRevenue           float64         `json:"previousRevenue"`
	RevenueChangePercent      float64         `json:"revenueChangePercent"`
	PreviousWeddingCount      int             `json:"previousWeddingCount"`
	WeddingCountChangePercent float64         `json:"weddingCountChangePercent"`
	TopPackages               []PackageSales  `json:"topPackages"`
	TopMenuItems              []MenuItemSales `json:"topMenuItems"`
}

// PackageSales is one package line of a sales report.
type PackageSales struct {
	PackageID     int64   `json:"packageId"`
	Name          string  `json:"name"`
	TimesSold     int     `json:"timesSold"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"marginPercent"`
}

// MenuItemSales is one menu item line of a sales report.
type MenuItemSales struct {
	MenuItemID    int64   `json:"menuItemId"`
	Name          string  `json:"name"`
	QuantitySold  float64 `json:"quantitySold"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"marginPercent"`
}

// PaymentsReport shows invoiced, collected and outstanding amounts by payment status.
type PaymentsReport struct {
	Period                 string                 `json:"period"`
	Value                  string                 `json:"value"`
	PreviousPeriod         *PeriodRef             `json:"previousPeriod"`
	TotalInvoiced          float64                `json:"totalInvoiced"`
	TotalCollected         float64                `json:"totalCollected"`
	TotalOutstanding       float64                `json:"totalOutstanding"`
	CollectionRatePercent  float64                `json:"collectionRatePercent"`
	PartialPaymentRatio    float64                `json:"partialPaymentRatio"` // Assumed share collected on "partial" invoices
	ByStatus               []PaymentStatusSummary `json:"byStatus"`
	Invoices               []InvoiceBalance       `json:"invoices"`
	PreviousCollected      float64                `json:"previousCollected"`
	CollectedChangePercent float64                `json:"collectedChangePercent"`
}

// PaymentStatusSummary aggregates invoices sharing one payment status.
type PaymentStatusSummary struct {
	Status      string  `json:"status"`
	Count       int     `json:"count"`
	Invoiced    float64 `json:"invoiced"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// InvoiceBalance is a wedding invoice with its recomputed total and balance.
type InvoiceBalance struct {
	WeddingID     int64   `json:"weddingId"`
	CoupleName    string  `json:"coupleName"`
	WeddingDate   string  `json:"weddingDate"`
	PaymentStatus string  `json:"paymentStatus"`
	InvoiceTotal  float64 `json:"invoiceTotal"`
	Collected     float64 `json:"collected"`
	Outstanding   float64 `json:"outstanding"`
}

// FinancialStatement is the income statement for a period.
type FinancialStatement struct {
	Period                 string            `json:"period"`
	Value                  string            `json:"value"`
	PreviousPeriod         *PeriodRef        `json:"previousPeriod"`
	Revenue                RevenueLines      `json:"revenue"`
	CostOfSales            float64           `json:"costOfSales"`
	GrossProfit            float64           `json:"grossProfit"`
	GrossMarginPercent     float64           `json:"grossMarginPercent"`
	OperatingExpenses      OperatingExpenses `json:"operatingExpenses"`
	NetIncome              float64           `json:"netIncome"`
	NetMarginPercent       float64           `json:"netMarginPercent"`
	PreviousRevenue        float64           `json:"previousRevenue"`
	PreviousNetIncome      float64           `json:"previousNetIncome"`
	RevenueChangePercent   float64           `json:"revenueChangePercent"`
	NetIncomeChangePercent float64           `json:"netIncomeChangePercent"`
}

// RevenueLines breaks revenue into its sources.
type RevenueLines struct {
	PackageRevenue   float64 `json:"packageRevenue"`
	EquipmentRevenue float64 `json:"equipmentRevenue"`
	Total            float64 `json:"total"`
}

// OperatingExpenses lists expenses below gross profit.
type OperatingExpenses struct {
	FoodCost float64 `json:"foodCost"`
	Total    float64 `json:"total"`
}

// CashFlowStatement reports cash actually collected against costs incurred.
type CashFlowStatement struct {
	Period                   string       `json:"period"`
	Value                    string       `json:"value"`
	PreviousPeriod           *PeriodRef   `json:"previousPeriod"`
	CashInflows              CashInflows  `json:"cashInflows"`
	CashOutflows             CashOutflows `json:"cashOutflows"`
	NetCashFlow              float64      `json:"netCashFlow"`
	Invoiced                 float64      `json:"invoiced"`
	ReceivablesIncrease      float64      `json:"receivablesIncrease"`
	PreviousNetCashFlow      float64      `json:"previousNetCashFlow"`
	NetCashFlowChangePercent float64      `json:"netCashFlowChangePercent"`
}

// CashInflows lists cash received.
type CashInflows struct {
	CollectedFromClients float64 `json:"collectedFromClients"`
	Total                float64 `json:"total"`
}

// CashOutflows lists cash spent.
type CashOutflows struct {
	PackageCosts float64 `json:"packageCosts"`
	FoodCosts    float64 `json:"foodCosts"`
	Total        float64 `json:"total"`
}

// AgingReport groups outstanding invoices by days past due.
type AgingReport struct {
	Period           string       `json:"period"`
	Value            string       `json:"value"`
	AsOf             string       `json:"asOf"`
	TotalOutstanding float64      `json:"totalOutstanding"`
	InvoiceCount     int          `json:"invoiceCount"`
	Buckets          AgingBuckets `json:"buckets"`
}

// AgingBuckets holds the four aging buckets.
type AgingBuckets struct {
	Current    AgingBucket `json:"current"`
	Days31To60 AgingBucket `json:"days_31_60"`
	Days61To90 AgingBucket `json:"days_61_90"`
	Over90     AgingBucket `json:"over_90"`
}

// AgingBucket accumulates invoices of one bucket.
type AgingBucket struct {
	Label      string      `json:"label"`
	Amount     float64     `json:"amount"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
	Items      []AgingItem `json:"items"`
}

// AgingItem is one outstanding invoice inside an aging bucket.
type AgingItem struct {
	WeddingID     int64   `json:"weddingId"`
	CoupleName    string  `json:"coupleName"`
	WeddingDate   string  `json:"weddingDate"`
	DueDate       string  `json:"dueDate"`
	DaysOverdue   int     `json:"daysOverdue"`
	PaymentStatus string  `json:"paymentStatus"`
	InvoiceTotal  float64 `json:"invoiceTotal"`
	Outstanding   float64 `json:"outstanding"`
}

// MenuUsageReport shows how much of each menu item was served.
type MenuUsageReport struct {
	Period                string          `json:"period"`
	Value                 string          `json:"value"`
	PreviousPeriod        *PeriodRef      `json:"previousPeriod"`
	TotalQuantity         float64         `json:"totalQuantity"`
	TotalRevenue          float64         `json:"totalRevenue"`
	TotalCost             float64         `json:"totalCost"`
	TotalMargin           float64         `json:"totalMargin"`
	PreviousTotalQuantity float64         `json:"previousTotalQuantity"`
	QuantityChangePercent float64         `json:"quantityChangePercent"`
	Items                 []MenuItemUsage `json:"items"`
}

// MenuItemUsage is one menu item line of a menu usage report.
type MenuItemUsage struct {
	MenuItemID            int64   `json:"menuItemId"`
	Name                  string  `json:"name"`
	Quantity              float64 `json:"quantity"`
	PackageAssignments    int     `json:"packageAssignments"`
	Revenue               float64 `json:"revenue"`
	Cost                  float64 `json:"cost"`
	Margin                float64 `json:"margin"`
	MarginPercent         float64 `json:"marginPercent"`
	PreviousQuantity      float64 `json:"previousQuantity"`
	QuantityChangePercent float64 `json:"quantityChangePercent"`
}

// InventoryUsageReport covers equipment allocations and ingredient consumption.
type InventoryUsageReport struct {
	Period                    string               `json:"period"`
	Value                     string               `json:"value"`
	PreviousPeriod            *PeriodRef           `json:"previousPeriod"`
	TotalQuantityUsed         float64              `json:"totalQuantityUsed"`
	TotalRentalValue          float64              `json:"totalRentalValue"`
	PreviousTotalQuantityUsed float64              `json:"previousTotalQuantityUsed"`
	QuantityChangePercent     float64              `json:"quantityChangePercent"`
	Items                     []InventoryItemUsage `json:"items"`
	Ingredients               []IngredientUsage    `json:"ingredients"`
}

// InventoryItemUsage is one inventory item line.
type InventoryItemUsage struct {
	InventoryItemID       int64   `json:"inventoryItemId"`
	Name                  string  `json:"name"`
	QuantityUsed          float64 `json:"quantityUsed"`
	WeddingCount          int     `json:"weddingCount"`
	RentalValue           float64 `json:"rentalValue"`
	PreviousQuantityUsed  float64 `json:"previousQuantityUsed"`
	QuantityChangePercent float64 `json:"quantityChangePercent"`
}

// IngredientUsage is the rolled-up consumption of one ingredient.
type IngredientUsage struct {
	IngredientID             int64   `json:"ingredientId"`
	Name                     string  `json:"name"`
	Unit                     string  `json:"unit"`
	QuantityConsumed         float64 `json:"quantityConsumed"`
	PreviousQuantityConsumed float64 `json:"previousQuantityConsumed"`
	ChangePercent            float64 `json:"changePercent"`
}
