// Package universe holds the static symbol lists scans run against.
package universe

import (
	"fmt"
	"sort"
)

// Nifty50 is the NSE large-cap index constituent list.
var Nifty50 = []string{
	"ADANIENT", "ADANIPORTS", "APOLLOHOSP", "ASIANPAINT", "AXISBANK",
	"BAJAJ-AUTO", "BAJAJFINSV", "BAJFINANCE", "BEL", "BHARTIARTL",
	"BPCL", "BRITANNIA", "CIPLA", "COALINDIA", "DRREDDY",
	"EICHERMOT", "GRASIM", "HCLTECH", "HDFCBANK", "HDFCLIFE",
	"HEROMOTOCO", "HINDALCO", "HINDUNILVR", "ICICIBANK", "INDUSINDBK",
	"INFY", "ITC", "JSWSTEEL", "KOTAKBANK", "LT",
	"M&M", "MARUTI", "NESTLEIND", "NTPC", "ONGC",
	"POWERGRID", "RELIANCE", "SBILIFE", "SBIN", "SHRIRAMFIN",
	"SUNPHARMA", "TATACONSUM", "TATAMOTORS", "TATASTEEL", "TCS",
	"TECHM", "TITAN", "TRENT", "ULTRACEMCO", "WIPRO",
}

// NiftyBank covers the banking index constituents.
var NiftyBank = []string{
	"AUBANK", "AXISBANK", "BANKBARODA", "CANBK", "FEDERALBNK",
	"HDFCBANK", "ICICIBANK", "IDFCFIRSTB", "INDUSINDBK", "KOTAKBANK",
	"PNB", "SBIN",
}

// NiftyIT covers the IT index constituents.
var NiftyIT = []string{
	"COFORGE", "HCLTECH", "INFY", "LTIM", "LTTS",
	"MPHASIS", "PERSISTENT", "TCS", "TECHM", "WIPRO",
}

var indices = map[string][]string{
	"NIFTY50":   Nifty50,
	"NIFTYBANK": NiftyBank,
	"NIFTYIT":   NiftyIT,
}

// Indices lists the known index names in stable order.
func Indices() []string {
	names := make([]string, 0, len(indices))
	for name := range indices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Symbols returns a copy of the constituent list for an index.
func Symbols(index string) ([]string, error) {
	syms, ok := indices[index]
	if !ok {
		return nil, fmt.Errorf("unknown index %q (known: %v)", index, Indices())
	}
	out := make([]string, len(syms))
	copy(out, syms)
	return out, nil
}

// Merge combines symbol lists, removing duplicates, and returns them sorted.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
