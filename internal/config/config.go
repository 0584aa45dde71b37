package config

import (
	"slices"

	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/exchange"
	"github.com/eugenenazirov/bridgebot/internal/models"
)

// Config is the resolved, validated configuration of the trading bot.
// A Config is never modified after Load returns it; a new configuration
// means a new call to Load.
type Config struct {
	Bridge       models.Coin `json:"bridge" yaml:"bridge"`
	BridgeSymbol string      `json:"bridgeSymbol" yaml:"bridge_symbol"`

	ScoutHistoryPruneHours float64 `json:"scoutHistoryPruneHours" yaml:"scout_history_prune_hours"`
	ScoutMultiplier        float64 `json:"scoutMultiplier" yaml:"scout_multiplier"`
	ScoutSleepTime         int     `json:"scoutSleepTime" yaml:"scout_sleep_time"`
	RatioAdjustWeight      int     `json:"ratioAdjustWeight" yaml:"ratio_adjust_weight"`

	APIKey       string `json:"apiKey" yaml:"api_key"`
	APISecretKey string `json:"apiSecretKey" yaml:"api_secret_key"`
	TLD          string `json:"tld" yaml:"tld"`

	TradeFee          TradeFee `json:"tradeFee" yaml:"trade_fee"`
	SupportedCoins    []string `json:"supportedCoins" yaml:"supported_coins"`
	CurrentCoinSymbol string   `json:"currentCoinSymbol" yaml:"current_coin"`
	Strategy          string   `json:"strategy" yaml:"strategy"`

	EnablePaperTrading bool `json:"enablePaperTrading" yaml:"enable_paper_trading"`

	SellTimeout        int                `json:"sellTimeout" yaml:"sell_timeout"`
	BuyTimeout         int                `json:"buyTimeout" yaml:"buy_timeout"`
	SellOrderType      exchange.OrderKind `json:"sellOrderType" yaml:"sell_order_type"`
	SellOrderID        string             `json:"sellOrderId" yaml:"sell_order_id"`
	SellMaxPriceChange float64            `json:"sellMaxPriceChange" yaml:"sell_max_price_change"`
	BuyOrderType       exchange.OrderKind `json:"buyOrderType" yaml:"buy_order_type"`
	BuyOrderID         string             `json:"buyOrderId" yaml:"buy_order_id"`
	BuyMaxPriceChange  float64            `json:"buyMaxPriceChange" yaml:"buy_max_price_change"`
	PriceType          PriceType          `json:"priceType" yaml:"price_type"`

	EnableStopLoss      bool          `json:"enableStopLoss" yaml:"enable_stop_loss"`
	StopLossPrice       StopLossPrice `json:"stopLossPrice" yaml:"stop_loss_price"`
	StopLossPercentage  float64       `json:"stopLossPercentage" yaml:"stop_loss_percentage"`
	StopLossBanDuration float64       `json:"stopLossBanDuration" yaml:"stop_loss_ban_duration"`
	AcceptLosses        bool          `json:"acceptLosses" yaml:"accept_losses"`
	MaxIdleHours        float64       `json:"maxIdleHours" yaml:"max_idle_hours"`
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	out := c
	out.SupportedCoins = slices.Clone(c.SupportedCoins)
	return out
}

// Sources are the inputs of a resolution run. Resolution reads nothing else.
type Sources struct {
	Env          Environment
	Files        FileReader
	ConfigPath   string
	CoinListPath string
	OrderTypes   exchange.OrderTypeMapping
	Logger       *zap.Logger
}

func (s Sources) withDefaults() Sources {
	if s.Files == nil {
		s.Files = OSFiles{}
	}
	if s.ConfigPath == "" {
		s.ConfigPath = DefaultConfigFile
	}
	if s.CoinListPath == "" {
		s.CoinListPath = DefaultCoinListFile
	}
	if s.OrderTypes == nil {
		s.OrderTypes = exchange.NewBinanceOrderTypes()
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s
}

// Load resolves the configuration: persisted layer, environment precedence,
// coercion, enumerated validation and the coin list, in that order. Errors
// from each step are returned as is.
func Load(src Sources) (Config, error) {
	src = src.withDefaults()

	persisted, err := LoadPersisted(src.Files, src.ConfigPath, src.Logger)
	if err != nil {
		return Config{}, err
	}

	cfg, raw, err := resolveScalars(src.Env, persisted)
	if err != nil {
		return Config{}, err
	}

	enums, err := validateEnums(raw, src.OrderTypes)
	if err != nil {
		return Config{}, err
	}
	cfg.SellOrderType = enums.sell.kind
	cfg.SellOrderID = enums.sell.id
	cfg.BuyOrderType = enums.buy.kind
	cfg.BuyOrderID = enums.buy.id
	cfg.PriceType = enums.priceType
	cfg.StopLossPrice = enums.stopLossPrice

	coins, err := SupportedCoins(src.Env, src.Files, src.CoinListPath)
	if err != nil {
		return Config{}, err
	}
	cfg.SupportedCoins = coins

	cfg.Bridge = models.NewCoin(cfg.BridgeSymbol, false)

	src.Logger.Debug("configuration resolved",
		zap.String("bridge", cfg.BridgeSymbol),
		zap.String("strategy", cfg.Strategy),
		zap.Int("supported_coins", len(cfg.SupportedCoins)),
		zap.Bool("paper_trading", cfg.EnablePaperTrading),
		zap.Bool("persisted_file", !persisted.Empty()),
	)

	return cfg, nil
}
