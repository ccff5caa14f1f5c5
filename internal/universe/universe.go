// Package universe holds the static symbol tables: the sector mapping used
// by the quote normalizer, the sector index instruments, and the default
// scan list.
package universe

// SectorUnknown is the sentinel for tickers outside the mapped universe.
const SectorUnknown = "Unknown"

// stockSectors maps bare tickers to sector labels.
var stockSectors = map[string]string{
	// IT
	"TCS": "IT", "INFY": "IT", "WIPRO": "IT", "HCLTECH": "IT", "TECHM": "IT",
	"LTI": "IT", "COFORGE": "IT", "MINDTREE": "IT", "MPHASIS": "IT", "PERSISTENT": "IT",

	// Oil & Gas
	"RELIANCE": "Oil & Gas", "ONGC": "Oil & Gas", "IOC": "Oil & Gas", "BPCL": "Oil & Gas",
	"GAIL": "Oil & Gas", "HINDPETRO": "Oil & Gas", "PETRONET": "Oil & Gas", "OIL": "Oil & Gas",

	// Banking & Financial Services
	"HDFCBANK": "Private Bank", "ICICIBANK": "Private Bank", "KOTAKBANK": "Private Bank",
	"AXISBANK": "Private Bank", "INDUSINDBK": "Private Bank", "BANDHANBNK": "Private Bank",
	"SBIN": "PSU Bank", "PNB": "PSU Bank", "BANKBARODA": "PSU Bank", "CANBK": "PSU Bank",
	"HDFC": "Financial Services", "BAJFINANCE": "Financial Services", "BAJAJFINSV": "Financial Services",
	"SBILIFE": "Financial Services", "HDFCLIFE": "Financial Services", "ICICIGI": "Financial Services",

	// FMCG
	"ITC": "FMCG", "HINDUNILVR": "FMCG", "BRITANNIA": "FMCG", "DABUR": "FMCG", "MARICO": "FMCG",
	"NESTLEIND": "FMCG", "GODREJCP": "FMCG", "COLPAL": "FMCG", "TATACONSUM": "FMCG",

	// Pharma
	"DRREDDY": "Pharma", "SUNPHARMA": "Pharma", "CIPLA": "Pharma", "DIVISLAB": "Pharma",
	"AUROPHARMA": "Pharma", "LUPIN": "Pharma", "TORNTPHARM": "Pharma", "BIOCON": "Pharma",
	"ALKEM": "Pharma", "CADILAHC": "Pharma",

	// Auto
	"TATAMOTORS": "Auto", "M&M": "Auto", "MARUTI": "Auto", "BAJAJ-AUTO": "Auto",
	"HEROMOTOCO": "Auto", "EICHERMOT": "Auto", "TVSMOTOR": "Auto", "ASHOKLEY": "Auto",
	"MOTHERSON": "Auto", "BALKRISIND": "Auto", "MRF": "Auto", "APOLLOTYRE": "Auto",

	// Metal & Mining
	"TATASTEEL": "Metal", "HINDALCO": "Metal", "JSWSTEEL": "Metal", "VEDL": "Metal",
	"COALINDIA": "Metal", "NATIONALUM": "Metal", "SAIL": "Metal", "JINDALSTEL": "Metal",
	"NMDC": "Metal", "HINDZINC": "Metal",

	// Realty
	"DLF": "Realty", "OBEROIRLTY": "Realty", "GODREJPROP": "Realty", "PRESTIGE": "Realty",
	"PHOENIXLTD": "Realty", "BRIGADE": "Realty",

	// Consumer Durables
	"TITAN": "Consumer Durables", "VOLTAS": "Consumer Durables", "HAVELLS": "Consumer Durables",
	"WHIRLPOOL": "Consumer Durables", "CROMPTON": "Consumer Durables", "BATAINDIA": "Consumer Durables",

	// Media & Entertainment
	"ZEEL": "Media", "SUNTV": "Media", "PVR": "Media", "NETWORK18": "Media",
	"DISHTV": "Media", "HATHWAY": "Media",

	// Telecom
	"BHARTIARTL": "Telecom", "IDEA": "Telecom", "TTML": "Telecom",

	// Power & Energy
	"NTPC": "Power", "POWERGRID": "Power", "ADANIPOWER": "Power", "TATAPOWER": "Power",
	"NHPC": "Power", "TORNTPOWER": "Power",

	// Cement
	"ULTRACEMCO": "Cement", "GRASIM": "Cement", "SHREECEM": "Cement", "ACC": "Cement",
	"AMBUJACEM": "Cement", "JKCEMENT": "Cement", "RAMCOCEM": "Cement",

	// Conglomerate
	"LT": "Conglomerate", "ADANIENT": "Conglomerate", "SIEMENS": "Conglomerate",

	// Indices
	"NIFTY50": "Index", "BANKNIFTY": "Index", "SENSEX": "Index", "FINNIFTY": "Index",
	"MIDCPNIFTY": "Index",
}

// SectorIndices maps sector index names to their quote instruments.
var SectorIndices = map[string]string{
	"NIFTY AUTO":               "NSE:NIFTY_AUTO-INDEX",
	"NIFTY FINANCIAL SERVICES": "NSE:NIFTY_FIN_SERVICE-INDEX",
	"NIFTY FMCG":               "NSE:NIFTY_FMCG-INDEX",
	"NIFTY IT":                 "NSE:NIFTY_IT-INDEX",
	"NIFTY MEDIA":              "NSE:NIFTY_MEDIA-INDEX",
	"NIFTY METAL":              "NSE:NIFTY_METAL-INDEX",
	"NIFTY PHARMA":             "NSE:NIFTY_PHARMA-INDEX",
	"NIFTY PSU BANK":           "NSE:NIFTY_PSU_BANK-INDEX",
	"NIFTY PRIVATE BANK":       "NSE:NIFTY_PVT_BANK-INDEX",
	"NIFTY REALTY":             "NSE:NIFTY_REALTY-INDEX",
	"NIFTY HEALTHCARE":         "NSE:NIFTY_HEALTHCARE-INDEX",
	"NIFTY CONSUMER DURABLES":  "NSE:NIFTY_CONSR_DURBL-INDEX",
	"NIFTY OIL & GAS":          "NSE:NIFTY_OIL_AND_GAS-INDEX",
}

// ScanSymbols is the default instrument list scanned when the config
// universe is empty.
var ScanSymbols = []string{
	"NSE:TCS-EQ", "NSE:INFY-EQ", "NSE:WIPRO-EQ", "NSE:HCLTECH-EQ", "NSE:TECHM-EQ",
	"NSE:HDFCBANK-EQ", "NSE:ICICIBANK-EQ", "NSE:SBIN-EQ", "NSE:AXISBANK-EQ",
	"NSE:KOTAKBANK-EQ", "NSE:INDUSINDBK-EQ",
	"NSE:RELIANCE-EQ", "NSE:ONGC-EQ", "NSE:IOC-EQ", "NSE:BPCL-EQ",
	"NSE:ITC-EQ", "NSE:HINDUNILVR-EQ", "NSE:BRITANNIA-EQ", "NSE:NESTLEIND-EQ",
	"NSE:DRREDDY-EQ", "NSE:SUNPHARMA-EQ", "NSE:CIPLA-EQ", "NSE:DIVISLAB-EQ",
	"NSE:TATAMOTORS-EQ", "NSE:MARUTI-EQ", "NSE:M&M-EQ", "NSE:BAJAJ-AUTO-EQ",
	"NSE:TATASTEEL-EQ", "NSE:HINDALCO-EQ", "NSE:JSWSTEEL-EQ", "NSE:VEDL-EQ",
	"NSE:LT-EQ", "NSE:ADANIENT-EQ",
	"NSE:BAJFINANCE-EQ", "NSE:BAJAJFINSV-EQ", "NSE:HDFCLIFE-EQ",
	"NSE:ULTRACEMCO-EQ", "NSE:SHREECEM-EQ", "NSE:ACC-EQ",
	"NSE:TITAN-EQ", "NSE:HAVELLS-EQ",
	"NSE:BHARTIARTL-EQ",
}

// AvailableSectors lists the sectors offered to the display filter.
var AvailableSectors = []string{
	"All", "IT", "Private Bank", "PSU Bank", "Oil & Gas", "FMCG",
	"Pharma", "Auto", "Metal", "Financial Services", "Cement",
	"Consumer Durables", "Telecom", "Conglomerate",
}

// SectorOf returns the sector for a bare ticker, or SectorUnknown.
func SectorOf(symbol string) string {
	if s, ok := stockSectors[symbol]; ok {
		return s
	}
	return SectorUnknown
}

// Sectors returns a copy of the full symbol-to-sector table.
func Sectors() map[string]string {
	out := make(map[string]string, len(stockSectors))
	for k, v := range stockSectors {
		out[k] = v
	}
	return out
}

// Symbols returns all mapped tickers.
func Symbols() []string {
	out := make([]string, 0, len(stockSectors))
	for k := range stockSectors {
		out = append(out, k)
	}
	return out
}
