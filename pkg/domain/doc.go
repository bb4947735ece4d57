// Package domain contains the core entities of the taxed token: base-unit
// amounts, addresses, the token's persisted state, tax tiers, pools and the
// events emitted by ledger operations. The types carry no infrastructure
// concerns so storage backends, the engine and the HTTP layer can share them.
package domain
