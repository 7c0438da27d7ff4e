package currency

import "strings"

// BaseCurrency is the reference currency every stored amount is
// denominated in.
const BaseCurrency = "EUR"

// symbols is the full set of codes the rate service quotes against EUR.
var symbols = map[string]struct{}{
	"AED": {}, "AFN": {}, "ALL": {}, "AMD": {}, "ANG": {}, "AOA": {}, "ARS": {},
	"AUD": {}, "AWG": {}, "AZN": {}, "BAM": {}, "BBD": {}, "BDT": {}, "BGN": {},
	"BHD": {}, "BIF": {}, "BMD": {}, "BND": {}, "BOB": {}, "BRL": {}, "BSD": {},
	"BTC": {}, "BTN": {}, "BWP": {}, "BYN": {}, "BYR": {}, "BZD": {}, "CAD": {},
	"CDF": {}, "CHF": {}, "CLF": {}, "CLP": {}, "CNY": {}, "COP": {}, "CRC": {},
	"CUC": {}, "CUP": {}, "CVE": {}, "CZK": {}, "DJF": {}, "DKK": {}, "DOP": {},
	"DZD": {}, "EGP": {}, "ERN": {}, "ETB": {}, "EUR": {}, "FJD": {}, "FKP": {},
	"GBP": {}, "GEL": {}, "GGP": {}, "GHS": {}, "GIP": {}, "GMD": {}, "GNF": {},
	"GTQ": {}, "GYD": {}, "HKD": {}, "HNL": {}, "HRK": {}, "HTG": {}, "HUF": {},
	"IDR": {}, "ILS": {}, "IMP": {}, "INR": {}, "IQD": {}, "IRR": {}, "ISK": {},
	"JEP": {}, "JMD": {}, "JOD": {}, "JPY": {}, "KES": {}, "KGS": {}, "KHR": {},
	"KMF": {}, "KPW": {}, "KRW": {}, "KWD": {}, "KYD": {}, "KZT": {}, "LAK": {},
	"LBP": {}, "LKR": {}, "LRD": {}, "LSL": {}, "LTL": {}, "LVL": {}, "LYD": {},
	"MAD": {}, "MDL": {}, "MGA": {}, "MKD": {}, "MMK": {}, "MNT": {}, "MOP": {},
	"MRO": {}, "MUR": {}, "MVR": {}, "MWK": {}, "MXN": {}, "MYR": {}, "MZN": {},
	"NAD": {}, "NGN": {}, "NIO": {}, "NOK": {}, "NPR": {}, "NZD": {}, "OMR": {},
	"PAB": {}, "PEN": {}, "PGK": {}, "PHP": {}, "PKR": {}, "PLN": {}, "PYG": {},
	"QAR": {}, "RON": {}, "RSD": {}, "RUB": {}, "RWF": {}, "SAR": {}, "SBD": {},
	"SCR": {}, "SDG": {}, "SEK": {}, "SGD": {}, "SHP": {}, "SLL": {}, "SOS": {},
	"SRD": {}, "STD": {}, "SVC": {}, "SYP": {}, "SZL": {}, "THB": {}, "TJS": {},
	"TMT": {}, "TND": {}, "TOP": {}, "TRY": {}, "TTD": {}, "TWD": {}, "TZS": {},
	"UAH": {}, "UGX": {}, "USD": {}, "UYU": {}, "UZS": {}, "VEF": {}, "VND": {},
	"VUV": {}, "WST": {}, "XAF": {}, "XAG": {}, "XAU": {}, "XCD": {}, "XDR": {},
	"XOF": {}, "XPF": {}, "YER": {}, "ZAR": {}, "ZMK": {}, "ZMW": {}, "ZWL": {},
}

// Normalize upper-cases a currency code; codes are matched
// case-insensitively everywhere.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsSupported(code string) bool {
	_, ok := symbols[Normalize(code)]
	return ok
}
