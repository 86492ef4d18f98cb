package filtering

import (
	"strings"
	"time"

	"github.com/utmdash/utmdash-api/internal/domain"
)

// NormalizedValue devolve o valor da célula pronto para comparação de
// filtro: source e campaign passam pela limpeza de UTM, o resto é o
// texto bruto.
func NormalizedValue(row domain.Row, column string, columns domain.ColumnRoles) string {
	value := row.Text(column)

	switch column {
	case columns.Source:
		return CleanUTMSource(value)
	case columns.Campaign:
		return CleanUTMCampaign(value)
	default:
		return value
	}
}

// Apply computa o subconjunto de linhas que satisfaz o estado de filtros.
// Puro e determinístico: mesma entrada, mesmo resultado.
func Apply(dataset *domain.Dataset, columns domain.ColumnRoles, state domain.FilterState, now time.Time) []domain.Row {
	search := strings.ToLower(state.Search)

	filtered := make([]domain.Row, 0, len(dataset.Rows))
	for _, row := range dataset.Rows {
		if !passesDate(row, columns, state, now) {
			continue
		}
		if !passesColumns(row, columns, state) {
			continue
		}
		if search != "" && !passesSearch(row, dataset.Headers, search) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

// passesDate avalia o preset de período. Janelas relativas ancoram no
// início do dia corrente, então o recorte não muda ao longo do dia.
// Linha sem data interpretável falha qualquer preset diferente de "all".
func passesDate(row domain.Row, columns domain.ColumnRoles, state domain.FilterState, now time.Time) bool {
	if columns.Date == "" || state.Preset == domain.PresetAll {
		return true
	}

	rowDate, ok := ParseSaleDate(row.Text(columns.Date))
	if !ok {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch state.Preset {
	case domain.PresetToday:
		return rowDate.Year() == now.Year() && rowDate.YearDay() == now.YearDay()
	case domain.Preset7Days:
		return !rowDate.Before(today.AddDate(0, 0, -7))
	case domain.Preset15Days:
		return !rowDate.Before(today.AddDate(0, 0, -15))
	case domain.Preset30Days:
		return !rowDate.Before(today.AddDate(0, 0, -30))
	case domain.PresetCustom:
		if state.CustomStart == "" || state.CustomEnd == "" {
			return true
		}
		start, err1 := time.Parse("2006-01-02", state.CustomStart)
		end, err2 := time.Parse("2006-01-02", state.CustomEnd)
		if err1 != nil || err2 != nil {
			return true
		}
		end = end.Add(24*time.Hour - time.Second)
		return !rowDate.Before(start) && !rowDate.After(end)
	}

	return true
}

func passesColumns(row domain.Row, columns domain.ColumnRoles, state domain.FilterState) bool {
	for column, accepted := range state.Columns {
		if len(accepted) == 0 {
			continue
		}

		value := NormalizedValue(row, column, columns)
		found := false
		for _, v := range accepted {
			if v == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func passesSearch(row domain.Row, headers []string, search string) bool {
	for _, header := range headers {
		if strings.Contains(strings.ToLower(row.Text(header)), search) {
			return true
		}
	}
	return false
}
