package domain

import "github.com/ethereum/go-ethereum/common"

// Pool is a token/native constant-product pair.
type Pool struct {
	Address common.Address
	Token   common.Address
	// ReserveToken and ReserveNative are the balances last synced by the pair.
	ReserveToken  Amount
	ReserveNative Amount
	// LiquiditySupply is the total amount of LP shares issued.
	LiquiditySupply Amount
}
