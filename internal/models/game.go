package models

// Game-wide constants. Values mirror the production deployment of
// pixey.vibegame.fun.
const (
	// FreePixelsPerUser is the credit grant for a newly created account.
	FreePixelsPerUser = 10

	// NewPixelCost and OverwritePixelCost are the credit costs of painting
	// an empty cell and repainting an occupied one.
	NewPixelCost       = 1
	OverwritePixelCost = 2

	// MaxBulkPixels caps a single bulk placement request after
	// deduplication.
	MaxBulkPixels = 50000

	// MaxBurnAmount bounds a single burn-credit request.
	MaxBurnAmount = 1_000_000

	// MinBurnRawUnits is the smallest on-chain burn accepted for credit.
	MinBurnRawUnits = 1000

	// MinCreateSOL is the SOL balance a wallet must hold before an
	// account is created for it.
	MinCreateSOL = 0.1

	// ChallengeDomain is the first line of every login challenge.
	ChallengeDomain = "I am logging in to pixey.vibegame.fun"
)
