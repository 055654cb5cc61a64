package domain

type WalletLink struct {
	UserID  string
	Address string
}

type WalletRepository interface {
	// UpsertWallet overwrites any previously linked address for the user
	UpsertWallet(link *WalletLink) error
	GetWalletByUserID(userID string) (*WalletLink, error)
}

type WalletUsecase interface {
	LinkWallet(userID, address string) error
	GetAddress(userID string) (string, error)
}
