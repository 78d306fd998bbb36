package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sample input file names written by WriteSampleInputs.
const (
	SampleAssetsFile  = "data_assets.csv"
	SampleCashFile    = "data_cash.csv"
	SampleEquityFile  = "data_equity.csv"
	SampleProfitFile  = "data_profit.csv"
	SampleRevenueFile = "data_revenue.csv"
	SamplePricesFile  = "stock_prices.csv"
)

// Sample wide exports: three tickers over 2022..2019. CCC has no cash row.
var sampleMetrics = map[string]string{
	SampleAssetsFile: `Ticker,2022,2021,2020,2019
AAA,400,300,200,100
BBB,150,160,170,180
CCC,90,0,80,70
`,
	SampleCashFile: `Ticker,2022,2021,2020,2019
AAA,120,90,40,10
BBB,30,40,50,60
`,
	SampleEquityFile: `Ticker,2022,2021,2020,2019
AAA,200,150,100,50
BBB,60,64,68,72
CCC,45,0,40,35
`,
	SampleProfitFile: `Ticker,2022,2021,2020,2019
AAA,80,45,20,5
BBB,-10,-5,0,5
CCC,9,3,8,7
`,
	SampleRevenueFile: `Ticker,2022,2021,2020,2019
AAA,800,600,400,200
BBB,100,110,120,130
CCC,0,30,40,35
`,
}

// Sample price years.
const (
	sampleFirstYear = 2019
	sampleLastYear  = 2022
)

// samplePrice returns a deterministic monthly price per ticker:
// AAA rises through each year, BBB falls, CCC is flat until a late-2022 jump.
func samplePrice(ticker string, year, month int) float64 {
	n := float64(year - sampleFirstYear)
	m := float64(month)
	switch ticker {
	case "AAA":
		return 10*(n+3) + m
	case "BBB":
		return 100 - 5*n - 2*m
	default:
		if year == sampleLastYear && month >= 11 {
			return 120
		}
		return 50
	}
}

// samplePricesCSV renders one row per month for every sample ticker.
func samplePricesCSV() string {
	tickers := []string{"AAA", "BBB", "CCC"}

	var sb strings.Builder
	sb.WriteString(",Date," + strings.Join(tickers, ",") + "\n")

	row := 0
	for year := sampleFirstYear; year <= sampleLastYear; year++ {
		for month := 1; month <= 12; month++ {
			sb.WriteString(fmt.Sprintf("%d,%04d-%02d-28", row, year, month))
			for _, t := range tickers {
				sb.WriteString(fmt.Sprintf(",%g", samplePrice(t, year, month)))
			}
			sb.WriteString("\n")
			row++
		}
	}
	return sb.String()
}

// WriteSampleInputs writes a small, self-consistent set of input files
// into dir and returns their paths.
func WriteSampleInputs(dir string) (Paths, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Paths{}, err
	}

	files := make(map[string]string, len(sampleMetrics)+1)
	for name, content := range sampleMetrics {
		files[name] = content
	}
	files[SamplePricesFile] = samplePricesCSV()

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return Paths{}, fmt.Errorf("write %s: %w", name, err)
		}
	}

	return Paths{
		Assets:  filepath.Join(dir, SampleAssetsFile),
		Cash:    filepath.Join(dir, SampleCashFile),
		Equity:  filepath.Join(dir, SampleEquityFile),
		Profit:  filepath.Join(dir, SampleProfitFile),
		Revenue: filepath.Join(dir, SampleRevenueFile),
		Prices:  filepath.Join(dir, SamplePricesFile),
	}, nil
}
