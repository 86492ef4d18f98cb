package insighting

import (
	"sort"
	"time"

	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/usecases/filtering"
)

// SumRevenue soma a coluna de receita das linhas dadas; células não
// numéricas valem 0. Coluna não resolvida soma 0.
func SumRevenue(rows []domain.Row, revenueColumn string) float64 {
	total := 0.0
	for _, row := range rows {
		total += row.Number(revenueColumn)
	}
	return total
}

// GroupPerformance agrupa as linhas filtradas por source|campaign e
// acumula as métricas de cada cluster. A saída vem ordenada por vendas
// em ordem decrescente (ordenação estável).
func GroupPerformance(rows []domain.Row, columns domain.ColumnRoles, settings domain.Settings) []*domain.PerformanceGroup {
	groups := map[string]*domain.PerformanceGroup{}
	order := make([]string, 0)
	contents := map[string]map[string]bool{}

	for _, row := range rows {
		source := filtering.CleanUTMSource(row.Text(columns.Source))
		campaign := filtering.CleanUTMCampaign(row.Text(columns.Campaign))
		key := source + "|" + campaign

		product := textOrNA(row, columns.Product)
		content := textOrNA(row, columns.Content)
		status := textOrNA(row, columns.Status)
		dateStr := filtering.DateOnly(row.Text(columns.Date))
		revenue := row.Number(columns.Revenue)

		group, ok := groups[key]
		if !ok {
			group = &domain.PerformanceGroup{
				Key:      key,
				Source:   source,
				Campaign: campaign,
				MinDate:  dateStr,
				MaxDate:  dateStr,
				Products: map[string]int{},
				Statuses: map[string]int{},
			}
			groups[key] = group
			contents[key] = map[string]bool{}
			order = append(order, key)
		}

		group.Vendas++
		group.Faturamento += revenue
		group.Products[product]++
		group.Statuses[status]++
		if !contents[key][content] {
			contents[key][content] = true
			group.Contents = append(group.Contents, content)
		}

		// Datas não interpretáveis não movem min/max, mas a linha conta
		if current, ok := filtering.ParseSaleDate(dateStr); ok {
			if min, ok := filtering.ParseSaleDate(group.MinDate); ok && current.Before(min) {
				group.MinDate = dateStr
			}
			if max, ok := filtering.ParseSaleDate(group.MaxDate); ok && current.After(max) {
				group.MaxDate = dateStr
			}
		}
	}

	result := make([]*domain.PerformanceGroup, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.Finalize(settings.GroupInvestment(key))
		result = append(result, group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Vendas > result[j].Vendas
	})

	return result
}

// PeriodCounters conta vendas de hoje, 7 e 30 dias sobre o dataset
// COMPLETO, ignorando filtros de propósito: é o termômetro de recência
// geral da conta.
func PeriodCounters(rows []domain.Row, dateColumn string, now time.Time) domain.PeriodStats {
	stats := domain.PeriodStats{}
	if dateColumn == "" {
		return stats
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d7 := today.AddDate(0, 0, -7)
	d30 := today.AddDate(0, 0, -30)

	for _, row := range rows {
		date, ok := filtering.ParseSaleDate(row.Text(dateColumn))
		if !ok {
			continue
		}

		if date.Year() == now.Year() && date.YearDay() == now.YearDay() {
			stats.Today++
		}
		if !date.Before(d7) {
			stats.Last7++
		}
		if !date.Before(d30) {
			stats.Last30++
		}
	}

	return stats
}

// Evolution conta as linhas filtradas por data distinta, em ordem
// crescente de data. Datas não interpretáveis ordenam como época zero.
func Evolution(rows []domain.Row, dateColumn string) []domain.EvolutionPoint {
	if dateColumn == "" {
		return []domain.EvolutionPoint{}
	}

	counts := map[string]int{}
	order := make([]string, 0)
	for _, row := range rows {
		dateStr := filtering.DateOnly(row.Text(dateColumn))
		if _, seen := counts[dateStr]; !seen {
			order = append(order, dateStr)
		}
		counts[dateStr]++
	}

	points := make([]domain.EvolutionPoint, 0, len(order))
	for _, dateStr := range order {
		points = append(points, domain.EvolutionPoint{Date: dateStr, Count: counts[dateStr]})
	}

	sortKey := func(p domain.EvolutionPoint) time.Time {
		if t, ok := filtering.ParseSaleDate(p.Date); ok {
			return t
		}
		return time.Unix(0, 0)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return sortKey(points[i]).Before(sortKey(points[j]))
	})

	return points
}

// TopN ranqueia os valores normalizados de uma coluna entre as linhas
// filtradas; empates preservam a ordem de chegada.
func TopN(rows []domain.Row, column string, columns domain.ColumnRoles, n int) []domain.TopItem {
	if column == "" {
		return []domain.TopItem{}
	}

	counts := map[string]int{}
	order := make([]string, 0)
	for _, row := range rows {
		value := filtering.NormalizedValue(row, column, columns)
		if value == "" {
			value = "N/A"
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	items := make([]domain.TopItem, 0, len(order))
	for _, value := range order {
		items = append(items, domain.TopItem{Name: value, Count: counts[value]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if len(items) > n {
		items = items[:n]
	}
	return items
}

// FilterOptions lista os valores únicos normalizados de cada coluna
// categórica (sobre o dataset completo) com as contagens do recorte
// filtrado atual.
func FilterOptions(dataset *domain.Dataset, filtered []domain.Row, columns domain.ColumnRoles) map[string][]domain.FilterOption {
	options := map[string][]domain.FilterOption{}

	for _, column := range columns.Categorical() {
		unique := map[string]bool{}
		values := make([]string, 0)
		for _, row := range dataset.Rows {
			value := filtering.NormalizedValue(row, column, columns)
			if value == "" || unique[value] {
				continue
			}
			unique[value] = true
			values = append(values, value)
		}
		sort.Strings(values)

		counts := map[string]int{}
		for _, row := range filtered {
			counts[filtering.NormalizedValue(row, column, columns)]++
		}

		list := make([]domain.FilterOption, 0, len(values))
		for _, value := range values {
			list = append(list, domain.FilterOption{Value: value, Count: counts[value]})
		}
		options[column] = list
	}

	return options
}

// textOrNA espelha o fallback do dashboard original para célula vazia
func textOrNA(row domain.Row, column string) string {
	if column == "" {
		return "N/A"
	}
	if value := row.Text(column); value != "" {
		return value
	}
	return "N/A"
}
