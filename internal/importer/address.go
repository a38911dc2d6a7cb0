package importer

import (
	"regexp"
	"strings"
)

var (
	// Обрезает шоссейные ориентиры вида "EXIT 284", "MM 85", "AT MILE 142":
	// геокодеры на них спотыкаются, сам адрес обычно остается пригодным
	highwayJunctionRe = regexp.MustCompile(`(?i)(?:EXIT|MM|EX|AT\s+MILE)\s*[\w\s-]+`)
	commaAndRe        = regexp.MustCompile(`(?i),\s*and`)
	multiSpaceRe      = regexp.MustCompile(`\s+`)
	doubleCommaRe     = regexp.MustCompile(`,\s*,`)
)

// CleanHighwayAddress нормализует адрес стоянки из выгрузки OPIS перед
// геокодированием: убирает номера съездов и мильные отметки, разворачивает
// "&" и "/" в "and", схлопывает пробелы и лишние запятые.
func CleanHighwayAddress(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := highwayJunctionRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "&", " and ")
	cleaned = strings.ReplaceAll(cleaned, "/", " and ")
	cleaned = commaAndRe.ReplaceAllString(cleaned, " and")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = doubleCommaRe.ReplaceAllString(cleaned, ",")

	return strings.Trim(cleaned, " ,")
}
