// Package v1handler implements the v1 HTTP API of the token service: read
// endpoints for token state, accounts and events, and authenticated
// endpoints for every state-changing operation.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"taxtoken/internal/token"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"

	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Token token.Token
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:              http.StatusNotFound,
	serrors.ErrUnauthorized:          http.StatusUnauthorized,
	serrors.ErrForbidden:             http.StatusForbidden,
	serrors.ErrBadRequest:            http.StatusBadRequest,
	serrors.ErrInvalidAddress:        http.StatusBadRequest,
	serrors.ErrSelfRecovery:          http.StatusBadRequest,
	serrors.ErrConflict:              http.StatusConflict,
	serrors.ErrNothingToRecover:      http.StatusConflict,
	serrors.ErrInsufficientAllowance: http.StatusUnprocessableEntity,
	serrors.ErrInsufficientBalance:   http.StatusUnprocessableEntity,
	serrors.ErrRateLimited:           http.StatusTooManyRequests,
	serrors.ErrDistributionFailure:   http.StatusBadGateway,
	serrors.ErrUnavailable:           http.StatusServiceUnavailable,
	serrors.ErrTimeout:               http.StatusGatewayTimeout,
	serrors.ErrInternal:              http.StatusInternalServerError,
}

var kindMessage = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
}

// NewError maps err to a response. Errors without a kind and ErrInternal are
// logged and reported as a bare internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok || status == http.StatusInternalServerError {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := kindMessage[kind]
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}
	if msg == "" {
		msg = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeJSON(w, res.StatusCode, encodeError(res.Response))
}

// Routes returns the v1 API. Paths are relative to the /v1 prefix. Reads
// are public, everything else requires a bearer token whose subject is the
// caller's address.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /token", h.GetToken)
	mux.HandleFunc("GET /accounts/{address}", h.GetAccount)
	mux.HandleFunc("GET /allowances/{owner}/{spender}", h.GetAllowance)
	mux.HandleFunc("GET /events", h.ListEvents)
	mux.HandleFunc("GET /quote/buy", h.QuoteBuy)

	authed := map[string]http.HandlerFunc{
		"POST /transfer":            h.Transfer,
		"POST /transfer-from":       h.TransferFrom,
		"POST /approve":             h.Approve,
		"POST /allowance/increase":  h.IncreaseAllowance,
		"POST /allowance/decrease":  h.DecreaseAllowance,
		"POST /burn":                h.Burn,
		"POST /burn-from":           h.BurnFrom,
		"POST /mint":                h.Mint,
		"POST /swap/buy":            h.Buy,
		"POST /swap/sell":           h.Sell,
		"POST /liquidity":           h.AddLiquidity,
		"POST /native/send":         h.SendNative,
		"POST /admin/exemptions":    h.SetExempt,
		"POST /admin/pairs":         h.SetPair,
		"POST /admin/beneficiaries": h.SetBeneficiary,
		"POST /admin/threshold":     h.SetThreshold,
		"POST /admin/ownership":     h.TransferOwnership,
		"DELETE /admin/ownership":   h.RenounceOwnership,
		"POST /recover/token":       h.RecoverToken,
		"POST /recover/native":      h.RecoverNative,
	}
	for pattern, fn := range authed {
		mux.Handle(pattern, h.authenticate(sec, fn))
	}

	return mux
}

// authenticate runs next with the bearer token's caller in the context.
func (h *Handler) authenticate(sec *SecHandler, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := sec.HandleBearerAuth(r.Context(), BearerToken(r))
		if err != nil {
			h.writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
