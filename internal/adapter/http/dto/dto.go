package dto

// FundRequest is the request body for a faucet funding request. Amount is in
// ZEC; zero means "use the configured default".
type FundRequest struct {
	Address string  `json:"address" binding:"required"`
	Amount  float64 `json:"amount" binding:"omitempty,gt=0"`
	Memo    string  `json:"memo" binding:"omitempty,max=512"`
}

// AdminFundRequest is the request body for an out-of-band wallet top-up.
type AdminFundRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note" binding:"omitempty,max=200"`
}

// FundResponse is returned for a granted mock transfer.
type FundResponse struct {
	TxID       string  `json:"txid"`
	Address    string  `json:"address"`
	Amount     float64 `json:"amount"` // ZEC
	AmountZats int64   `json:"amount_zats"`
	Balance    float64 `json:"balance"` // ZEC remaining
	Mock       bool    `json:"mock"`
}

// TransferJobResponse is the observable state of a background transfer job.
type TransferJobResponse struct {
	JobID       string  `json:"job_id"`
	Status      string  `json:"status"`
	Phase       string  `json:"phase"`
	TxID        string  `json:"txid,omitempty"`
	ErrorCode   string  `json:"error_code,omitempty"`
	Error       string  `json:"error,omitempty"`
	SubmittedAt string  `json:"submitted_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// BalanceResponse is the response for the balance query.
type BalanceResponse struct {
	Address     string  `json:"address"`
	Balance     float64 `json:"balance"` // ZEC
	BalanceZats int64   `json:"balance_zats"`
}

// StatsResponse is the aggregate wallet view.
type StatsResponse struct {
	Address       string  `json:"address"`
	CreatedAt     string  `json:"created_at"`
	Balance       float64 `json:"balance"` // ZEC
	BalanceZats   int64   `json:"balance_zats"`
	FundingCount  int     `json:"funding_count"`
	SpendingCount int     `json:"spending_count"`
	TotalFunded   float64 `json:"total_funded"` // ZEC
	TotalSpent    float64 `json:"total_spent"`  // ZEC
}

// FundingEventResponse is returned for an admin top-up.
type FundingEventResponse struct {
	TxID      string  `json:"txid"`
	Amount    float64 `json:"amount"` // ZEC
	Note      string  `json:"note"`
	Timestamp string  `json:"timestamp"`
	Balance   float64 `json:"balance"` // ZEC after the top-up
}

// ServiceInfoResponse is the root endpoint payload.
type ServiceInfoResponse struct {
	Service string            `json:"service"`
	Chain   string            `json:"chain"`
	Version string            `json:"version"`
	Links   map[string]string `json:"links"`
}
