package config

import (
	"fmt"
	"strconv"
	"strings"
)

// TradeFeeAuto asks the trading engine to use the fee reported by the exchange.
const TradeFeeAuto = "auto"

// TradeFee is either the exchange reported fee or a fixed rate.
type TradeFee struct {
	Auto bool
	Rate float64
}

func (f TradeFee) String() string {
	if f.Auto {
		return TradeFeeAuto
	}
	return strconv.FormatFloat(f.Rate, 'f', -1, 64)
}

// MarshalText renders the fee the way it is written in configuration.
func (f TradeFee) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// scalars is the destination of table driven resolution. Enumerated
// settings land in enums unchecked and are validated afterwards.
type scalars struct {
	cfg   Config
	enums rawEnums
}

// resolveScalars applies source precedence and coercion to every setting in
// table order and stops at the first failure.
func resolveScalars(env Environment, persisted PersistedLayer) (Config, rawEnums, error) {
	r := resolver{env: env, persisted: persisted}

	var out scalars
	for _, spec := range Settings() {
		if err := r.assign(spec, spec.bind(&out)); err != nil {
			return Config{}, rawEnums{}, err
		}
	}
	return out.cfg, out.enums, nil
}

type resolver struct {
	env       Environment
	persisted PersistedLayer
}

// raw picks the first non-empty environment value, then the file value, then
// the built-in default.
func (r resolver) raw(spec SettingSpec) (string, error) {
	if value, ok := r.env.Lookup(spec.Env); ok {
		return value, nil
	}
	if value, ok := r.persisted.Lookup(spec.Key); ok {
		return value, nil
	}
	if spec.Required {
		return "", &MissingError{Setting: spec.Key, Env: spec.Env}
	}
	return spec.Default, nil
}

// assign resolves spec and stores the coerced value in dst.
func (r resolver) assign(spec SettingSpec, dst any) error {
	value, err := r.raw(spec)
	if err != nil {
		return err
	}

	switch dst := dst.(type) {
	case *string:
		*dst = value
	case *bool:
		*dst = parseBool(value)
	case *int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return &TypeError{Setting: spec.Key, Value: value, Kind: spec.Kind, Err: err}
		}
		*dst = n
	case *float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return &TypeError{Setting: spec.Key, Value: value, Kind: spec.Kind, Err: err}
		}
		*dst = f
	case *TradeFee:
		fee, err := parseTradeFee(value)
		if err != nil {
			return &TypeError{Setting: spec.Key, Value: value, Kind: spec.Kind, Err: err}
		}
		*dst = fee
	default:
		return fmt.Errorf("config: setting %s is bound to unsupported %T", spec.Key, dst)
	}
	return nil
}

func parseTradeFee(value string) (TradeFee, error) {
	if value == TradeFeeAuto {
		return TradeFee{Auto: true}, nil
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return TradeFee{}, err
	}
	return TradeFee{Rate: rate}, nil
}

// parseBool accepts only "true" and "True"; everything else is false.
// Existing deployments rely on "TRUE", "yes" and "1" meaning false.
func parseBool(value string) bool {
	return value == "true" || value == "True"
}
