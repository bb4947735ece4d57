package v1handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"taxtoken/internal/token"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const maxBodyBytes = 64 << 10

// request is a flat JSON object. Numbers and booleans are kept in their
// textual form and parsed per field.
type request map[string]string

func decodeRequest(r *http.Request) (request, error) {
	req := request{}
	d := jx.Decode(io.LimitReader(r.Body, maxBodyBytes), 512)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch tt := d.Next(); tt {
		case jx.String:
			s, err := d.Str()
			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}
			req[string(key)] = s
		case jx.Number:
			n, err := d.Num()
			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}
			req[string(key)] = n.String()
		case jx.Bool:
			b, err := d.Bool()
			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}
			req[string(key)] = strconv.FormatBool(b)
		case jx.Null:
			return d.Null()
		default:
			return errors.Errorf("field %q: unexpected %s", key, tt)
		}

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode body"), "invalid request body")
	}

	return req, nil
}

// fields reads typed values out of a request or query. The first failure
// sticks and later reads return zero values.
type fields struct {
	get func(name string) (string, bool)
	err error
}

func bodyFields(req request) *fields {
	return &fields{get: func(name string) (string, bool) {
		v, ok := req[name]

		return v, ok && v != ""
	}}
}

func queryFields(r *http.Request) *fields {
	q := r.URL.Query()

	return &fields{get: func(name string) (string, bool) {
		v := q.Get(name)

		return v, v != ""
	}}
}

func pathFields(r *http.Request) *fields {
	return &fields{get: func(name string) (string, bool) {
		v := r.PathValue(name)

		return v, v != ""
	}}
}

func (f *fields) fail(msgFmt string, args ...any) {
	if f.err == nil {
		f.err = serrors.With(serrors.ErrBadRequest, msgFmt, args...)
	}
}

func (f *fields) required(name string) (string, bool) {
	if f.err != nil {
		return "", false
	}
	v, ok := f.get(name)
	if !ok {
		f.fail("missing field %q", name)
	}

	return v, ok
}

func (f *fields) address(name string) common.Address {
	v, ok := f.required(name)
	if !ok {
		return common.Address{}
	}
	if !common.IsHexAddress(v) {
		f.fail("field %q is not a hex address", name)

		return common.Address{}
	}

	return common.HexToAddress(v)
}

func (f *fields) amount(name string) domain.Amount {
	v, ok := f.required(name)
	if !ok {
		return domain.Zero
	}

	return f.parseAmount(name, v)
}

// optionalAmount returns zero when the field is absent.
func (f *fields) optionalAmount(name string) domain.Amount {
	if f.err != nil {
		return domain.Zero
	}
	v, ok := f.get(name)
	if !ok {
		return domain.Zero
	}

	return f.parseAmount(name, v)
}

func (f *fields) parseAmount(name, v string) domain.Amount {
	a, err := domain.ParseAmount(v)
	if err != nil {
		f.fail("field %q must be a base-unit integer", name)

		return domain.Zero
	}

	return a
}

func (f *fields) boolean(name string) bool {
	v, ok := f.required(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		f.fail("field %q must be a boolean", name)
	}

	return b
}

func (f *fields) role(name string) domain.Role {
	v, ok := f.required(name)
	if !ok {
		return ""
	}
	role := domain.Role(strings.ToLower(v))
	if !role.Valid() {
		f.fail("unknown role %q", v)
	}

	return role
}

func (f *fields) integer(name string) int64 {
	if f.err != nil {
		return 0
	}
	v, ok := f.get(name)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		f.fail("field %q must be a non-negative integer", name)
	}

	return n
}

func (f *fields) count(name string, def uint) uint {
	if f.err != nil {
		return def
	}
	v, ok := f.get(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		f.fail("field %q must be a non-negative integer", name)

		return def
	}

	return uint(n)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func encodeError(res ErrorResponse) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
	})

	return e.Bytes()
}

func encodeAddress(e *jx.Encoder, addr common.Address) {
	e.Str(addr.Hex())
}

func encodeTiers(e *jx.Encoder, t domain.TaxTiers) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("marketing", func(e *jx.Encoder) { e.UInt8(t.Marketing) })
		e.Field("liquidity", func(e *jx.Encoder) { e.UInt8(t.Liquidity) })
		e.Field("stake", func(e *jx.Encoder) { e.UInt8(t.Stake) })
	})
}

func encodeFees(e *jx.Encoder, f domain.Fees) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("marketing", func(e *jx.Encoder) { e.Str(f.Marketing.String()) })
		e.Field("liquidity", func(e *jx.Encoder) { e.Str(f.Liquidity.String()) })
	})
}

func encodeState(s *domain.TokenState) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("symbol", func(e *jx.Encoder) { e.Str(s.Symbol) })
		e.Field("decimals", func(e *jx.Encoder) { e.UInt8(s.Decimals) })
		e.Field("variant", func(e *jx.Encoder) { e.Str(string(s.Variant)) })
		e.Field("address", func(e *jx.Encoder) { encodeAddress(e, s.Address) })
		e.Field("router", func(e *jx.Encoder) { encodeAddress(e, s.Router) })
		e.Field("mainPair", func(e *jx.Encoder) { encodeAddress(e, s.MainPair) })
		e.Field("owner", func(e *jx.Encoder) { encodeAddress(e, s.Owner) })
		e.Field("beneficiaries", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, role := range []domain.Role{
					domain.RoleMarketing,
					domain.RoleVault,
					domain.RoleLiquidityVault,
					domain.RoleDev,
					domain.RoleMinter,
				} {
					e.Field(string(role), func(e *jx.Encoder) { encodeAddress(e, s.Beneficiary(role)) })
				}
			})
		})
		e.Field("totalSupply", func(e *jx.Encoder) { e.Str(s.TotalSupply.String()) })
		switch s.Variant {
		case domain.VariantDecay:
			e.Field("decayWindowSeconds", func(e *jx.Encoder) { e.Int64(int64(s.DecayWindow / time.Second)) })
			e.Field("decayPercent", func(e *jx.Encoder) { e.UInt8(s.DecayPercent) })
		default:
			e.Field("buyTaxes", func(e *jx.Encoder) { encodeTiers(e, s.BuyTaxes) })
			e.Field("sellTaxes", func(e *jx.Encoder) { encodeTiers(e, s.SellTaxes) })
			e.Field("threshold", func(e *jx.Encoder) { e.Str(s.Threshold.String()) })
			e.Field("accrued", func(e *jx.Encoder) { encodeFees(e, s.Accrued) })
			e.Field("distributed", func(e *jx.Encoder) { encodeFees(e, s.Distributed) })
		}
	})

	return e.Bytes()
}

func encodeAccount(a *domain.Account) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("address", func(e *jx.Encoder) { encodeAddress(e, a.Address) })
		e.Field("balance", func(e *jx.Encoder) { e.Str(a.Balance.String()) })
		e.Field("native", func(e *jx.Encoder) { e.Str(a.Native.String()) })
		e.Field("exempt", func(e *jx.Encoder) { e.Bool(a.Exempt) })
		e.Field("pair", func(e *jx.Encoder) { e.Bool(a.Pair) })
		e.Field("lastReceived", func(e *jx.Encoder) {
			if a.LastReceived.IsZero() {
				e.Null()

				return
			}
			e.Str(a.LastReceived.UTC().Format(time.RFC3339Nano))
		})
	})

	return e.Bytes()
}

func encodeEvent(e *jx.Encoder, ev domain.Event) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(ev.ID) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(ev.Kind)) })
		e.Field("attributes", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, k := range ev.Keys() {
					e.Field(k, func(e *jx.Encoder) { e.Str(ev.Attributes[k]) })
				}
			})
		})
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(ev.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}

func encodeEvents(events []domain.Event) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("events", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, ev := range events {
					encodeEvent(e, ev)
				}
			})
		})
	})

	return e.Bytes()
}

func encodeReceipt(rcpt *token.Receipt) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("amount", func(e *jx.Encoder) { e.Str(rcpt.Amount.String()) })
		e.Field("events", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, ev := range rcpt.Events {
					encodeEvent(e, ev)
				}
			})
		})
	})

	return e.Bytes()
}

// encodeAmount wraps a single amount under key.
func encodeAmount(key string, a domain.Amount) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field(key, func(e *jx.Encoder) { e.Str(a.String()) })
	})

	return e.Bytes()
}
