package v1handler

import (
	"context"
	"net/http"
	"taxtoken/internal/token"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"

	"github.com/ethereum/go-ethereum/common"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

func (h *Handler) GetToken(w http.ResponseWriter, r *http.Request) {
	state, err := h.deps.Token.Info(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeState(state))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	f := pathFields(r)
	addr := f.address("address")
	if f.err != nil {
		h.writeError(r.Context(), w, f.err)

		return
	}

	acc, err := h.deps.Token.Account(r.Context(), addr)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeAccount(acc))
}

func (h *Handler) GetAllowance(w http.ResponseWriter, r *http.Request) {
	f := pathFields(r)
	owner := f.address("owner")
	spender := f.address("spender")
	if f.err != nil {
		h.writeError(r.Context(), w, f.err)

		return
	}

	remaining, err := h.deps.Token.Allowance(r.Context(), owner, spender)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeAmount("allowance", remaining))
}

// ListEvents pages through stored events. Query: kind, after (exclusive id),
// limit.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	f := queryFields(r)
	after := f.integer("after")
	limit := f.count("limit", defaultEventsLimit)
	if f.err != nil {
		h.writeError(r.Context(), w, f.err)

		return
	}
	limit = min(limit, maxEventsLimit)

	events, err := h.deps.Token.Events(r.Context(), domain.EventKind(r.URL.Query().Get("kind")), after, limit)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeEvents(events))
}

func (h *Handler) QuoteBuy(w http.ResponseWriter, r *http.Request) {
	f := queryFields(r)
	nativeIn := f.amount("native")
	if f.err != nil {
		h.writeError(r.Context(), w, f.err)

		return
	}

	out, err := h.deps.Token.QuoteBuy(r.Context(), nativeIn)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeAmount("amountOut", out))
}

type mutation func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error)

// mutate decodes the body, runs fn as the authenticated caller and writes the
// receipt. An empty body is an empty object.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn mutation) {
	ctx := r.Context()

	caller, ok := GetCallerFromContext(ctx)
	if !ok {
		h.writeError(ctx, w, serrors.KindOnly(serrors.ErrUnauthorized))

		return
	}

	req := request{}
	if r.ContentLength != 0 {
		var err error
		if req, err = decodeRequest(r); err != nil {
			h.writeError(ctx, w, err)

			return
		}
	}

	rcpt, err := fn(ctx, caller, bodyFields(req))
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeReceipt(rcpt))
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		to, amount := f.address("to"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Transfer(ctx, caller, to, amount)
	})
}

func (h *Handler) TransferFrom(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		from, to, amount := f.address("from"), f.address("to"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.TransferFrom(ctx, caller, from, to, amount)
	})
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		spender, amount := f.address("spender"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Approve(ctx, caller, spender, amount)
	})
}

func (h *Handler) IncreaseAllowance(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		spender, amount := f.address("spender"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.IncreaseAllowance(ctx, caller, spender, amount)
	})
}

func (h *Handler) DecreaseAllowance(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		spender, amount := f.address("spender"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.DecreaseAllowance(ctx, caller, spender, amount)
	})
}

func (h *Handler) Burn(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		amount := f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Burn(ctx, caller, amount)
	})
}

func (h *Handler) BurnFrom(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		from, amount := f.address("from"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.BurnFrom(ctx, caller, from, amount)
	})
}

func (h *Handler) Mint(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		amount := f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Mint(ctx, caller, amount)
	})
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		nativeIn, minOut := f.amount("nativeIn"), f.optionalAmount("minOut")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Buy(ctx, caller, nativeIn, minOut)
	})
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		amountIn, minOut := f.amount("amountIn"), f.optionalAmount("minOut")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.Sell(ctx, caller, amountIn, minOut)
	})
}

func (h *Handler) AddLiquidity(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		tokenAmount, nativeAmount := f.amount("tokenAmount"), f.amount("nativeAmount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.AddLiquidity(ctx, caller, tokenAmount, nativeAmount)
	})
}

func (h *Handler) SendNative(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		to, amount := f.address("to"), f.amount("amount")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.SendNative(ctx, caller, to, amount)
	})
}

func (h *Handler) SetExempt(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		account, exempt := f.address("account"), f.boolean("exempt")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.SetExempt(ctx, caller, account, exempt)
	})
}

func (h *Handler) SetPair(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		pair, registered := f.address("pair"), f.boolean("registered")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.SetPair(ctx, caller, pair, registered)
	})
}

func (h *Handler) SetBeneficiary(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		role, account := f.role("role"), f.address("account")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.SetBeneficiary(ctx, caller, role, account)
	})
}

func (h *Handler) SetThreshold(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		threshold := f.amount("threshold")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.SetThreshold(ctx, caller, threshold)
	})
}

func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		owner := f.address("owner")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.TransferOwnership(ctx, caller, owner)
	})
}

func (h *Handler) RenounceOwnership(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, _ *fields) (*token.Receipt, error) {
		return h.deps.Token.RenounceOwnership(ctx, caller)
	})
}

func (h *Handler) RecoverToken(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, f *fields) (*token.Receipt, error) {
		asset := f.address("asset")
		if f.err != nil {
			return nil, f.err
		}

		return h.deps.Token.RecoverToken(ctx, caller, asset)
	})
}

func (h *Handler) RecoverNative(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(ctx context.Context, caller common.Address, _ *fields) (*token.Receipt, error) {
		return h.deps.Token.RecoverNative(ctx, caller)
	})
}
