package filtering

import (
	"strings"
	"time"
)

// utm_source é agrupado em um vocabulário fixo de plataformas; valores
// fora dele passam sem alteração e vazio conta como tráfego orgânico.
func CleanUTMSource(value string) string {
	if value == "" {
		return "organic"
	}

	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "tiktok"):
		return "tiktok"
	case strings.Contains(v, "facebook"), strings.Contains(v, "fb"):
		return "facebook"
	case strings.Contains(v, "instagram"), strings.Contains(v, "ig"):
		return "instagram"
	case strings.Contains(v, "google"):
		return "google"
	case strings.Contains(v, "kwai"):
		return "kwai"
	}

	return value
}

// CleanUTMCampaign corta o nome da campanha no primeiro `|`
func CleanUTMCampaign(value string) string {
	if value == "" {
		return "n/a"
	}

	return strings.TrimSpace(strings.SplitN(value, "|", 2)[0])
}

// fallbackLayouts cobre datas fora do padrão brasileiro
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSaleDate interpreta a célula de data preferindo dia/mês/ano com
// hora opcional. Retorna false quando nenhum formato serve.
func ParseSaleDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	datePart := strings.SplitN(value, " ", 2)[0]
	if parts := strings.Split(datePart, "/"); len(parts) == 3 {
		if t, err := time.Parse("2/1/2006", datePart); err == nil {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// DateOnly descarta o componente de hora de uma célula de data
func DateOnly(value string) string {
	return strings.SplitN(value, " ", 2)[0]
}
