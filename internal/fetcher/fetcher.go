package fetcher

import (
	"errors"
	"fmt"

	"StockExpert/internal/model"
)

// Fetcher defines the interface for retrieving price history.
// lookback is a provider range token such as "2y", interval a sampling
// interval such as "1d".
type Fetcher interface {
	FetchSeries(symbol, lookback, interval string) (*model.PriceSeries, error)
	Name() string
}

// NoDataError means the provider returned nothing usable for a ticker.
// The batch skips the ticker and moves on.
type NoDataError struct {
	Symbol string
	Reason string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for %s: %s", e.Symbol, e.Reason)
}

// IsNoData reports whether err is a NoDataError.
func IsNoData(err error) bool {
	var nde *NoDataError
	return errors.As(err, &nde)
}
