package market

import "subfun-backend/internal/store"

// PurchaseInput carries the request body of a purchase. Signature is
// accepted but not verified; settlement happens off-process.
type PurchaseInput struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
	Persistent    bool   `json:"persistent"`
}

type PurchaseResult struct {
	TransactionID string  `json:"transactionId"`
	Substance     string  `json:"substance"`
	Price         float64 `json:"price"`
	PaidIn        string  `json:"paidIn"`
	Persistent    bool    `json:"persistent"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
}

type HistoryResult struct {
	Count int                 `json:"count"`
	Items []store.Transaction `json:"items"`
}

type InventoryResult struct {
	WalletAddress string                `json:"walletAddress"`
	Substances    []store.InventoryItem `json:"substances"`
	CreatedAt     int64                 `json:"createdAt"`
}

type AddInventoryInput struct {
	WalletAddress string `json:"walletAddress"`
	SubstanceID   string `json:"substanceId"`
	Quantity      int    `json:"quantity"`
}

type BalanceTokens struct {
	SUB string `json:"SUB"`
	SOL string `json:"SOL"`
}

type BalanceResult struct {
	WalletAddress string        `json:"walletAddress"`
	Sub           string        `json:"sub"`
	Sol           string        `json:"sol"`
	Tokens        BalanceTokens `json:"tokens"`
}

type TopupInput struct {
	WalletAddress string  `json:"walletAddress"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Signature     string  `json:"signature"`
}

type TopupResult struct {
	Message       string        `json:"message"`
	NewBalance    BalanceTokens `json:"newBalance"`
	TransactionID string        `json:"transactionId"`
}
