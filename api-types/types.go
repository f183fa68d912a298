package types

type OpenPosition struct {
	Symbol         string  `json:"symbol"`
	Description    string  `json:"description"`
	InstrumentType string  `json:"instrumentType"`
	Side           string  `json:"side"`
	Quantity       float64 `json:"quantity"`
	AvgCostBasis   float64 `json:"avgCostBasis"`
	TotalCost      float64 `json:"totalCost"`
	// YYYY-MM-DD, omitted when no trade had a readable date
	FirstTradeDate *string `json:"firstTradeDate,omitempty"`
	LastTradeDate  *string `json:"lastTradeDate,omitempty"`
	TradeCount     int     `json:"tradeCount"`
}

type TransactionSummary struct {
	TotalTransactions int            `json:"totalTransactions"`
	TotalVolume       float64        `json:"totalVolume"`
	TotalBuyVolume    float64        `json:"totalBuyVolume"`
	TotalSellVolume   float64        `json:"totalSellVolume"`
	TotalFees         float64        `json:"totalFees"`
	NetCashFlow       float64        `json:"netCashFlow"`
	UniqueSymbols     int            `json:"uniqueSymbols"`
	FromDate          *string        `json:"fromDate,omitempty"`
	ToDate            *string        `json:"toDate,omitempty"`
	ActionBreakdown   map[string]int `json:"actionBreakdown"`
}

type SymbolSummary struct {
	Symbol            string   `json:"symbol"`
	Description       string   `json:"description"`
	TotalBuyQuantity  float64  `json:"totalBuyQuantity"`
	TotalSellQuantity float64  `json:"totalSellQuantity"`
	BuyAmount         float64  `json:"buyAmount"`
	SellAmount        float64  `json:"sellAmount"`
	NetAmount         float64  `json:"netAmount"`
	TotalFees         float64  `json:"totalFees"`
	TransactionCount  int      `json:"transactionCount"`
	AvgBuyPrice       *float64 `json:"avgBuyPrice,omitempty"`
	AvgSellPrice      *float64 `json:"avgSellPrice,omitempty"`
	MedianTradeSize   float64  `json:"medianTradeSize"`
}

type ActionSummary struct {
	Action           string  `json:"action"`
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int     `json:"transactionCount"`
	TotalFees        float64 `json:"totalFees"`
}

type DailyVolume struct {
	Date             string  `json:"date"`
	BuyVolume        float64 `json:"buyVolume"`
	SellVolume       float64 `json:"sellVolume"`
	NetVolume        float64 `json:"netVolume"`
	TransactionCount int     `json:"transactionCount"`
}

type AnalyzeResponse struct {
	Name               string             `json:"name"`
	Positions          []OpenPosition     `json:"positions"`
	EquityTransactions int                `json:"equityTransactions"`
	OptionTransactions int                `json:"optionTransactions"`
	IgnoredCount       int                `json:"ignoredCount"`
	Summary            TransactionSummary `json:"summary"`
	Symbols            []SymbolSummary    `json:"symbols"`
	Actions            []ActionSummary    `json:"actions"`
	DailyVolumes       []DailyVolume      `json:"dailyVolumes"`
}

type NewPortfolioRequest struct {
	Name string `json:"name"`
}

type NewPortfolioResponse struct {
	PortfolioID string `json:"portfolioId"`
}

type PortfolioPositionsResponse struct {
	PortfolioID string         `json:"portfolioId"`
	Positions   []OpenPosition `json:"positions"`
}
