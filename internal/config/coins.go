package config

import (
	"errors"
	"io/fs"
	"slices"
	"strings"
)

// SupportedCoins builds the coin list. A non-empty SUPPORTED_COIN_LIST wins
// and is used as given, duplicates included. Otherwise the coin list file is
// read line by line, skipping blanks, comments and repeated symbols. Neither
// source yields an empty list.
func SupportedCoins(env Environment, files FileReader, path string) ([]string, error) {
	coins := strings.Fields(env[EnvSupportedCoinList])
	if len(coins) > 0 {
		return coins, nil
	}

	if path == "" {
		return []string{}, nil
	}

	data, err := files.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	coins = []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || slices.Contains(coins, line) {
			continue
		}
		coins = append(coins, line)
	}
	return coins, nil
}
