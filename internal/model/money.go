package model

import "github.com/shopspring/decimal"

// Money goes over the wire as JSON numbers, for every decimal in the process
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
