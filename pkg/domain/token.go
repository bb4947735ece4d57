package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the null account. It can never be a beneficiary and is used
// as the owner after ownership is renounced.
var ZeroAddress = common.Address{} //nolint: gochecknoglobals

// Variant selects the tax policy of a deployed token.
type Variant string

const (
	// VariantTiered levies buy/sell tiers and distributes accrued fees.
	VariantTiered Variant = "tiered"
	// VariantDecay levies a flat tax on tokens sent shortly after receipt.
	VariantDecay Variant = "decay"
)

// Classification is the trade direction of a transfer.
type Classification int

const (
	// Normal is a wallet-to-wallet transfer.
	Normal Classification = iota
	// Buy is a transfer whose sender is a registered pool.
	Buy
	// Sell is a transfer whose recipient is a registered pool.
	Sell
)

func (c Classification) String() string {
	switch c {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "normal"
	}
}

// TaxTiers are percent-of-amount cuts for one trade direction.
type TaxTiers struct {
	Marketing uint8 `json:"marketing" validate:"lte=100"`
	Liquidity uint8 `json:"liquidity" validate:"lte=100"`
	Stake     uint8 `json:"stake"     validate:"lte=100"`
}

// Total returns the combined percentage of all tiers.
func (t TaxTiers) Total() uint16 {
	return uint16(t.Marketing) + uint16(t.Liquidity) + uint16(t.Stake)
}

// Cuts is the outcome of taxing a single transfer.
type Cuts struct {
	Marketing Amount
	Liquidity Amount
	Stake     Amount
	// Net is what the recipient receives.
	Net Amount
}

// Taxed reports whether any cut is non-zero.
func (c Cuts) Taxed() bool {
	return !c.Marketing.IsZero() || !c.Liquidity.IsZero() || !c.Stake.IsZero()
}

// Fees groups marketing and liquidity designated amounts.
type Fees struct {
	Marketing Amount `json:"marketing"`
	Liquidity Amount `json:"liquidity"`
}

// Total returns Marketing + Liquidity.
func (f Fees) Total() Amount {
	return f.Marketing.Add(f.Liquidity)
}

// Role names a configurable beneficiary address.
type Role string

const (
	RoleMarketing      Role = "marketing"
	RoleVault          Role = "vault"
	RoleLiquidityVault Role = "liquidity"
	RoleDev            Role = "dev"
	RoleMinter         Role = "minter"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleMarketing, RoleVault, RoleLiquidityVault, RoleDev, RoleMinter:
		return true
	}

	return false
}

// TokenState is the persisted, process-wide state of one deployed token.
// There is exactly one per storage.
type TokenState struct {
	Name     string
	Symbol   string
	Decimals uint8
	Variant  Variant

	// Address is the token's own account. Accrued fees live in its balance.
	Address common.Address
	// Router is the swap/liquidity collaborator the token trades through.
	Router common.Address
	// MainPair is the pool created at deployment.
	MainPair common.Address

	Owner          common.Address
	Minter         common.Address
	Marketing      common.Address
	Vault          common.Address
	LiquidityVault common.Address
	Dev            common.Address

	BuyTaxes  TaxTiers
	SellTaxes TaxTiers
	// Threshold is the minimum accrued balance that triggers a distribution.
	Threshold Amount

	TotalSupply Amount
	// Accrued holds tax proceeds waiting for the next distribution cycle.
	Accrued Fees
	// Distributed holds lifetime totals routed by distribution cycles.
	Distributed Fees

	// DecayWindow is how long after receipt an outgoing transfer is taxed.
	DecayWindow time.Duration
	// DecayPercent is the flat tax applied inside the decay window.
	DecayPercent uint8
}

// Beneficiary returns the address configured for role.
func (s *TokenState) Beneficiary(role Role) common.Address {
	switch role {
	case RoleMarketing:
		return s.Marketing
	case RoleVault:
		return s.Vault
	case RoleLiquidityVault:
		return s.LiquidityVault
	case RoleDev:
		return s.Dev
	case RoleMinter:
		return s.Minter
	}

	return ZeroAddress
}

// SetBeneficiary updates the address configured for role.
func (s *TokenState) SetBeneficiary(role Role, addr common.Address) {
	switch role {
	case RoleMarketing:
		s.Marketing = addr
	case RoleVault:
		s.Vault = addr
	case RoleLiquidityVault:
		s.LiquidityVault = addr
	case RoleDev:
		s.Dev = addr
	case RoleMinter:
		s.Minter = addr
	}
}

// RecoveryDestination is where recovered foreign tokens and native currency
// are sent: the marketing wallet for the tiered variant, dev for decay.
func (s *TokenState) RecoveryDestination() common.Address {
	if s.Variant == VariantDecay {
		return s.Dev
	}

	return s.Marketing
}

// Account is a read model combining everything known about one address.
type Account struct {
	Address      common.Address
	Balance      Amount
	Native       Amount
	Exempt       bool
	Pair         bool
	LastReceived time.Time
}
