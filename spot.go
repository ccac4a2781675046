package taxhelper

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "info": {
	        "isin": "LS000IUSD009",
	        "chartType": "mini",
	        ...
	    },
	    "series": {
	        "intraday": {
	            "data": [[1699999999000, 151.42], ...]
	        }
	    }
	}
*/

// SpotJPYPerUSD returns the latest intraday USD/JPY quote.
//
// The TTM table only covers published business days; when a withdrawal
// happened today the quote is not out yet, and the intraday spot is the
// closest available stand-in for a provisional run.
func SpotJPYPerUSD() (decimal.Decimal, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=349942&series=intraday&type=mini"
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", "USD/JPY", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", "USD/JPY", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %s %v", "USD/JPY", path, "not a float", jval)
	}
	return decimal.NewFromFloat(val), nil
}
