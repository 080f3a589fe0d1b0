package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetClass string

const (
	AssetClassEquity      AssetClass = "equity"
	AssetClassFixedIncome AssetClass = "fixed_income"
	AssetClassCrypto      AssetClass = "crypto"
	AssetClassCash        AssetClass = "cash"
)

// AllAssetClasses is the closed set of classes the engine understands.
// Allocation breakdowns always carry every key, holdings or not.
var AllAssetClasses = []AssetClass{
	AssetClassEquity,
	AssetClassFixedIncome,
	AssetClassCrypto,
	AssetClassCash,
}

func (c AssetClass) Valid() bool {
	for _, known := range AllAssetClasses {
		if c == known {
			return true
		}
	}
	return false
}

type Region string

const (
	RegionUS            Region = "US"
	RegionDevelopedExUS Region = "developed_ex_us"
	RegionEmerging      Region = "emerging"
	RegionGlobal        Region = "global"
)

var AllRegions = []Region{
	RegionUS,
	RegionDevelopedExUS,
	RegionEmerging,
	RegionGlobal,
}

func (r Region) Valid() bool {
	for _, known := range AllRegions {
		if r == known {
			return true
		}
	}
	return false
}

type Asset struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Class         AssetClass      `json:"assetClass"`
	Region        Region          `json:"region"`
	Allocation    float64         `json:"allocation"`
	Value         decimal.Decimal `json:"value"`
	Price         decimal.Decimal `json:"currentPrice"`
	ChangePercent float64         `json:"changePercent"`
}

type Portfolio struct {
	TotalValue  decimal.Decimal
	Assets      []Asset
	RiskProfile string
	LastUpdated time.Time
}

func (p Portfolio) DeepCopy() Portfolio {
	assets := make([]Asset, len(p.Assets))
	copy(assets, p.Assets)
	return Portfolio{
		TotalValue:  p.TotalValue,
		Assets:      assets,
		RiskProfile: p.RiskProfile,
		LastUpdated: p.LastUpdated,
	}
}

type PortfolioMetrics struct {
	Return     float64         `json:"portfolioReturn"`
	Volatility float64         `json:"portfolioVolatility"`
	Sharpe     float64         `json:"sharpeRatio"`
	TotalValue decimal.Decimal `json:"totalValue"`
	AssetCount int             `json:"numAssets"`
}

// PortfolioSnapshot is the sole view handed to collaborators: display
// layers, the advisor, simulations. It is a value copy of the store's
// state, never an alias.
type PortfolioSnapshot struct {
	TotalValue         decimal.Decimal        `json:"totalValue"`
	Assets             []Asset                `json:"assets"`
	RiskProfile        string                 `json:"riskProfile"`
	LastUpdated        time.Time              `json:"lastUpdated"`
	Metrics            PortfolioMetrics       `json:"metrics"`
	AllocationByClass  map[AssetClass]float64 `json:"assetAllocation"`
	AllocationByRegion map[Region]float64     `json:"geographicAllocation"`
}

// SeedAssets is the fixed seed book of holdings the store boots from when
// no external holdings feed is wired in.
func SeedAssets() []Asset {
	return []Asset{
		{Symbol: "AAPL", Name: "Apple Inc.", Class: AssetClassEquity, Region: RegionUS, Allocation: 15.0, Value: decimal.NewFromFloat(18862.58), Price: decimal.NewFromFloat(185.50), ChangePercent: 1.8},
		{Symbol: "MSFT", Name: "Microsoft Corp.", Class: AssetClassEquity, Region: RegionUS, Allocation: 12.0, Value: decimal.NewFromFloat(15090.06), Price: decimal.NewFromFloat(380.25), ChangePercent: 2.4},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Class: AssetClassEquity, Region: RegionUS, Allocation: 8.0, Value: decimal.NewFromFloat(10060.04), Price: decimal.NewFromFloat(142.30), ChangePercent: -0.8},
		{Symbol: "BTC", Name: "Bitcoin", Class: AssetClassCrypto, Region: RegionGlobal, Allocation: 5.0, Value: decimal.NewFromFloat(6287.53), Price: decimal.NewFromFloat(45200.00), ChangePercent: 12.1},
		{Symbol: "TLT", Name: "20+ Year Treasury Bond ETF", Class: AssetClassFixedIncome, Region: RegionUS, Allocation: 15.0, Value: decimal.NewFromFloat(18862.58), Price: decimal.NewFromFloat(95.40), ChangePercent: -0.3},
		{Symbol: "VEA", Name: "Developed Markets ETF", Class: AssetClassEquity, Region: RegionDevelopedExUS, Allocation: 20.0, Value: decimal.NewFromFloat(25150.10), Price: decimal.NewFromFloat(48.75), ChangePercent: 1.5},
		{Symbol: "VWO", Name: "Emerging Markets ETF", Class: AssetClassEquity, Region: RegionEmerging, Allocation: 15.0, Value: decimal.NewFromFloat(18862.58), Price: decimal.NewFromFloat(42.30), ChangePercent: 4.2},
		{Symbol: "CASH", Name: "Cash & Equivalents", Class: AssetClassCash, Region: RegionUS, Allocation: 10.0, Value: decimal.NewFromFloat(12575.05), Price: decimal.NewFromFloat(1.0), ChangePercent: 0.0},
	}
}
