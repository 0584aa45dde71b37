// Package config resolves the trading bot configuration from two layers:
// environment variables and the persisted user.cfg file. A non-empty
// environment variable always wins over the file, and the file wins over the
// built-in defaults. Resolved values are coerced to their declared types,
// enumerated settings are validated in a fixed order, and the supported coin
// list is assembled from SUPPORTED_COIN_LIST or the supported_coin_list file.
//
// Resolution is a pure function of its Sources: callers pass an environment
// snapshot and a FileReader, and receive a Config that is never modified
// afterwards.
package config
