package config

const (
	// DefaultConfigFile is the persisted settings file read when no path is given.
	DefaultConfigFile = "user.cfg"
	// DefaultCoinListFile is the coin list read when the environment supplies none.
	DefaultCoinListFile = "supported_coin_list"
	// UserSection is the only section of the persisted file that is consulted.
	UserSection = "binance_user_config"
	// EnvSupportedCoinList carries a whitespace separated list of coin symbols.
	EnvSupportedCoinList = "SUPPORTED_COIN_LIST"
)

// Kind is the declared type of a setting.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindFee
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enumeration"
	case KindFee:
		return "trade fee"
	default:
		return "unknown"
	}
}

// SettingSpec describes one recognised setting.
// Required settings have no default and must come from the environment or the file.
type SettingSpec struct {
	Key      string
	Env      string
	Kind     Kind
	Default  string
	Required bool
	Accepted []string

	// bind returns the field of s the coerced value is written to.
	bind func(s *scalars) any
}

var (
	settingBridge              = SettingSpec{Key: "bridge", Env: "BRIDGE_SYMBOL", Kind: KindString, Default: "USDT", bind: func(s *scalars) any { return &s.cfg.BridgeSymbol }}
	settingScoutHistoryHours   = SettingSpec{Key: "hourToKeepScoutHistory", Env: "HOURS_TO_KEEP_SCOUTING_HISTORY", Kind: KindFloat, Default: "1", bind: func(s *scalars) any { return &s.cfg.ScoutHistoryPruneHours }}
	settingScoutMultiplier     = SettingSpec{Key: "scout_multiplier", Env: "SCOUT_MULTIPLIER", Kind: KindFloat, Default: "5", bind: func(s *scalars) any { return &s.cfg.ScoutMultiplier }}
	settingScoutSleepTime      = SettingSpec{Key: "scout_sleep_time", Env: "SCOUT_SLEEP_TIME", Kind: KindInt, Default: "5", bind: func(s *scalars) any { return &s.cfg.ScoutSleepTime }}
	settingRatioAdjustWeight   = SettingSpec{Key: "ratio_adjust_weight", Env: "RATIO_ADJUST_WEIGHT", Kind: KindInt, Default: "100", bind: func(s *scalars) any { return &s.cfg.RatioAdjustWeight }}
	settingAPIKey              = SettingSpec{Key: "api_key", Env: "API_KEY", Kind: KindString, Required: true, bind: func(s *scalars) any { return &s.cfg.APIKey }}
	settingAPISecretKey        = SettingSpec{Key: "api_secret_key", Env: "API_SECRET_KEY", Kind: KindString, Required: true, bind: func(s *scalars) any { return &s.cfg.APISecretKey }}
	settingTLD                 = SettingSpec{Key: "tld", Env: "TLD", Kind: KindString, Default: "com", bind: func(s *scalars) any { return &s.cfg.TLD }}
	settingTradeFee            = SettingSpec{Key: "trade_fee", Env: "TRADE_FEE", Kind: KindFee, Default: TradeFeeAuto, bind: func(s *scalars) any { return &s.cfg.TradeFee }}
	settingCurrentCoin         = SettingSpec{Key: "current_coin", Env: "CURRENT_COIN_SYMBOL", Kind: KindString, Required: true, bind: func(s *scalars) any { return &s.cfg.CurrentCoinSymbol }}
	settingStrategy            = SettingSpec{Key: "strategy", Env: "STRATEGY", Kind: KindString, Default: "default", bind: func(s *scalars) any { return &s.cfg.Strategy }}
	settingPaperTrading        = SettingSpec{Key: "enable_paper_trading", Env: "ENABLE_PAPER_TRADING", Kind: KindBool, Default: "false", bind: func(s *scalars) any { return &s.cfg.EnablePaperTrading }}
	settingSellTimeout         = SettingSpec{Key: "sell_timeout", Env: "SELL_TIMEOUT", Kind: KindInt, Default: "0", bind: func(s *scalars) any { return &s.cfg.SellTimeout }}
	settingBuyTimeout          = SettingSpec{Key: "buy_timeout", Env: "BUY_TIMEOUT", Kind: KindInt, Default: "0", bind: func(s *scalars) any { return &s.cfg.BuyTimeout }}
	settingSellOrderType       = SettingSpec{Key: "sell_order_type", Env: "SELL_ORDER_TYPE", Kind: KindEnum, Default: "market", Accepted: []string{"limit", "market"}, bind: func(s *scalars) any { return &s.enums.sellOrderType }}
	settingSellMaxPriceChange  = SettingSpec{Key: "sell_max_price_change", Env: "SELL_MAX_PRICE_CHANGE", Kind: KindFloat, Default: "0.005", bind: func(s *scalars) any { return &s.cfg.SellMaxPriceChange }}
	settingBuyOrderType        = SettingSpec{Key: "buy_order_type", Env: "BUY_ORDER_TYPE", Kind: KindEnum, Default: "limit", Accepted: []string{"limit", "market"}, bind: func(s *scalars) any { return &s.enums.buyOrderType }}
	settingBuyMaxPriceChange   = SettingSpec{Key: "buy_max_price_change", Env: "BUY_MAX_PRICE_CHANGE", Kind: KindFloat, Default: "0.005", bind: func(s *scalars) any { return &s.cfg.BuyMaxPriceChange }}
	settingPriceType           = SettingSpec{Key: "price_type", Env: "PRICE_TYPE", Kind: KindEnum, Default: "orderbook", Accepted: []string{"orderbook", "ticker"}, bind: func(s *scalars) any { return &s.enums.priceType }}
	settingStopLoss            = SettingSpec{Key: "enable_stop_loss", Env: "ENABLE_STOP_LOSS", Kind: KindBool, Default: "false", bind: func(s *scalars) any { return &s.cfg.EnableStopLoss }}
	settingStopLossPrice       = SettingSpec{Key: "stop_loss_price", Env: "STOP_LOSS_PRICE", Kind: KindEnum, Default: "buy", Accepted: []string{"buy", "max"}, bind: func(s *scalars) any { return &s.enums.stopLossPrice }}
	settingStopLossPercentage  = SettingSpec{Key: "stop_loss_percentage", Env: "STOP_LOSS_PERCENTAGE", Kind: KindFloat, Default: "5.0", bind: func(s *scalars) any { return &s.cfg.StopLossPercentage }}
	settingStopLossBanDuration = SettingSpec{Key: "stop_loss_ban_duration", Env: "STOP_LOSS_BAN_DURATION", Kind: KindFloat, Default: "60.0", bind: func(s *scalars) any { return &s.cfg.StopLossBanDuration }}
	settingAcceptLosses        = SettingSpec{Key: "accept_losses", Env: "ACCEPT_LOSSES", Kind: KindBool, Default: "false", bind: func(s *scalars) any { return &s.cfg.AcceptLosses }}
	settingMaxIdleHours        = SettingSpec{Key: "max_idle_hours", Env: "MAX_IDLE_HOURS", Kind: KindFloat, Default: "3", bind: func(s *scalars) any { return &s.cfg.MaxIdleHours }}
)

// Settings returns every recognised setting in resolution order.
func Settings() []SettingSpec {
	return []SettingSpec{
		settingBridge,
		settingScoutHistoryHours,
		settingScoutMultiplier,
		settingScoutSleepTime,
		settingRatioAdjustWeight,
		settingAPIKey,
		settingAPISecretKey,
		settingTLD,
		settingTradeFee,
		settingCurrentCoin,
		settingStrategy,
		settingPaperTrading,
		settingSellTimeout,
		settingBuyTimeout,
		settingSellOrderType,
		settingSellMaxPriceChange,
		settingBuyOrderType,
		settingBuyMaxPriceChange,
		settingPriceType,
		settingStopLoss,
		settingStopLossPrice,
		settingStopLossPercentage,
		settingStopLossBanDuration,
		settingAcceptLosses,
		settingMaxIdleHours,
	}
}
