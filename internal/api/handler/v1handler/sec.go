package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"
	"taxtoken/internal/config"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// CallerKey holds the authenticated caller's address in a request context.
const CallerKey contextKey = "caller"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens. The subject claim is the
// caller's hex address.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil {
		return nil, serrors.With(serrors.ErrInternal, "sec handler options are required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// BearerToken extracts the token from the Authorization header, or returns "".
func BearerToken(r *http.Request) string {
	scheme, tkn, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(tkn)
}

func (s SecHandler) HandleBearerAuth(ctx context.Context, tkn string) (context.Context, error) {
	if tkn == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(tkn, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	if !common.IsHexAddress(claims.Subject) {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token subject is not an address")
	}
	caller := common.HexToAddress(claims.Subject)

	ctx = context.WithValue(ctx, CallerKey, caller)

	return logger.WithCaller(ctx, caller), nil
}

func GetCallerFromContext(ctx context.Context) (common.Address, bool) {
	caller, ok := ctx.Value(CallerKey).(common.Address)

	return caller, ok
}
