package config

import (
	"slices"

	"github.com/eugenenazirov/bridgebot/internal/exchange"
)

// PriceType selects where coin prices are read from.
type PriceType string

const (
	PriceTypeOrderbook PriceType = "orderbook"
	PriceTypeTicker    PriceType = "ticker"
)

// StopLossPrice selects the reference price a stop loss is measured against.
type StopLossPrice string

const (
	StopLossPriceBuy StopLossPrice = "buy"
	StopLossPriceMax StopLossPrice = "max"
)

const marketBuyRefusal = "market buys are reported to cause extreme losses and are disabled"

// rawEnums carries enumerated settings between resolution and validation.
type rawEnums struct {
	sellOrderType string
	buyOrderType  string
	priceType     string
	stopLossPrice string
}

type orderType struct {
	kind exchange.OrderKind
	id   string
}

type validEnums struct {
	sell          orderType
	buy           orderType
	priceType     PriceType
	stopLossPrice StopLossPrice
}

// validateEnums checks enumerated settings in a fixed order and stops at the
// first violation.
func validateEnums(raw rawEnums, mapping exchange.OrderTypeMapping) (validEnums, error) {
	var out validEnums
	var err error

	if out.sell, err = parseOrderType(settingSellOrderType, raw.sellOrderType, mapping); err != nil {
		return validEnums{}, err
	}

	if out.buy, err = parseOrderType(settingBuyOrderType, raw.buyOrderType, mapping); err != nil {
		return validEnums{}, err
	}
	if out.buy.kind == exchange.OrderKindMarket {
		return validEnums{}, &SafetyError{Setting: settingBuyOrderType.Key, Value: raw.buyOrderType, Reason: marketBuyRefusal}
	}

	if err := checkAccepted(settingPriceType, raw.priceType); err != nil {
		return validEnums{}, err
	}
	out.priceType = PriceType(raw.priceType)

	if err := checkAccepted(settingStopLossPrice, raw.stopLossPrice); err != nil {
		return validEnums{}, err
	}
	out.stopLossPrice = StopLossPrice(raw.stopLossPrice)

	return out, nil
}

func parseOrderType(spec SettingSpec, value string, mapping exchange.OrderTypeMapping) (orderType, error) {
	if err := checkAccepted(spec, value); err != nil {
		return orderType{}, err
	}
	kind := exchange.OrderKind(value)
	id, ok := mapping.OrderType(kind)
	if !ok {
		return orderType{}, &ValidationError{Setting: spec.Key, Value: value, Accepted: supportedKinds(mapping)}
	}
	return orderType{kind: kind, id: id}, nil
}

func supportedKinds(mapping exchange.OrderTypeMapping) []string {
	var kinds []string
	for _, kind := range exchange.OrderKinds() {
		if _, ok := mapping.OrderType(kind); ok {
			kinds = append(kinds, string(kind))
		}
	}
	return kinds
}

func checkAccepted(spec SettingSpec, value string) error {
	if slices.Contains(spec.Accepted, value) {
		return nil
	}
	return &ValidationError{
		Setting:  spec.Key,
		Value:    value,
		Accepted: slices.Clone(spec.Accepted),
	}
}
