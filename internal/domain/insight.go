package domain

import "github.com/utmdash/utmdash-api/pkg/utils"

// TaxRate é a alíquota fixa estimada sobre o faturamento
const TaxRate = 0.06

// DashboardStats reúne os KPIs calculados sobre as linhas filtradas
type DashboardStats struct {
	Faturamento  float64 `json:"faturamento"`
	Vendas       int     `json:"vendas"`
	Impostos     float64 `json:"impostos"`
	Investimento float64 `json:"investimento"`
	SaldoPreso   float64 `json:"saldoPreso"`
	CustoTotal   float64 `json:"custoTotal"`
	Lucro        float64 `json:"lucro"`
	Margem       float64 `json:"margem"`
	ROAS         float64 `json:"roas"`
	CPA          float64 `json:"cpa"`
	TicketMedio  float64 `json:"ticketMedio"`
}

// CalculateStats calcula os KPIs a partir do faturamento e da contagem de
// vendas filtradas, combinados com os ajustes manuais. Divisões por zero
// resultam em 0.
func CalculateStats(revenue float64, sales int, settings Settings) *DashboardStats {
	taxes := revenue * TaxRate
	totalCost := settings.GeneralInvestment + settings.FrozenBalance + taxes
	profit := revenue - totalCost

	roas := 0.0
	if totalCost > 0 {
		roas = revenue / totalCost
	}

	cpa := 0.0
	ticket := 0.0
	if sales > 0 {
		cpa = (settings.GeneralInvestment + taxes) / float64(sales)
		ticket = revenue / float64(sales)
	}

	margin := 0.0
	if revenue > 0 {
		margin = (profit / revenue) * 100
	}

	return &DashboardStats{
		Faturamento:  revenue,
		Vendas:       sales,
		Impostos:     taxes,
		Investimento: settings.GeneralInvestment,
		SaldoPreso:   settings.FrozenBalance,
		CustoTotal:   totalCost,
		Lucro:        profit,
		Margem:       utils.RoundWithTwoDecimalPlace(margin),
		ROAS:         utils.RoundWithTwoDecimalPlace(roas),
		CPA:          utils.RoundWithTwoDecimalPlace(cpa),
		TicketMedio:  utils.RoundWithTwoDecimalPlace(ticket),
	}
}

// GroupStatus classifica o resultado financeiro de um grupo
type GroupStatus string

const (
	GroupPending GroupStatus = "pending" // sem investimento registrado
	GroupProfit  GroupStatus = "profit"
	GroupLoss    GroupStatus = "loss"
)

// PerformanceGroup agrega as vendas de um par source|campaign
type PerformanceGroup struct {
	Key         string         `json:"key"`
	Source      string         `json:"source"`
	Campaign    string         `json:"campaign"`
	Vendas      int            `json:"vendas"`
	Faturamento float64        `json:"faturamento"`
	MinDate     string         `json:"minDate"`
	MaxDate     string         `json:"maxDate"`
	Products    map[string]int `json:"products"`
	Statuses    map[string]int `json:"statuses"`
	Contents    []string       `json:"contents"`
	Investment  float64        `json:"investment"`
	Taxes       float64        `json:"taxes"`
	TotalCost   float64        `json:"totalCost"`
	CPA         float64        `json:"cpa"`
	ROI         float64        `json:"roi"`
	Status      GroupStatus    `json:"status"`
}

// Finalize calcula os custos derivados do grupo a partir do investimento
// manual registrado para ele.
func (g *PerformanceGroup) Finalize(investment float64) {
	g.Investment = investment
	g.Taxes = g.Faturamento * TaxRate
	g.TotalCost = investment + g.Taxes

	g.CPA = 0
	if g.Vendas > 0 {
		g.CPA = utils.RoundWithTwoDecimalPlace(g.TotalCost / float64(g.Vendas))
	}

	g.ROI = 0
	if g.TotalCost > 0 {
		g.ROI = utils.RoundWithTwoDecimalPlace(g.Faturamento / g.TotalCost)
	}

	switch {
	case investment == 0:
		g.Status = GroupPending
	case g.Faturamento > g.TotalCost:
		g.Status = GroupProfit
	default:
		g.Status = GroupLoss
	}
}

// PeriodStats são os contadores de recência calculados sobre o dataset
// completo, propositalmente ignorando os filtros ativos.
type PeriodStats struct {
	Today  int `json:"today"`
	Last7  int `json:"last7"`
	Last30 int `json:"last30"`
}

// EvolutionPoint é um ponto da série diária de vendas
type EvolutionPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TopItem é uma entrada de um ranking top-N
type TopItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FilterOption é um valor selecionável de uma coluna categórica, com a
// contagem de vendas dentro do recorte atual.
type FilterOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DashboardView é o view model completo entregue ao front-end
type DashboardView struct {
	Stats         *DashboardStats           `json:"stats"`
	Groups        []*PerformanceGroup       `json:"groups"`
	Periods       PeriodStats               `json:"periods"`
	Evolution     []EvolutionPoint          `json:"evolution"`
	TopCampaigns  []TopItem                 `json:"topCampaigns"`
	TopSources    []TopItem                 `json:"topSources"`
	TopProducts   []TopItem                 `json:"topProducts"`
	FilterOptions map[string][]FilterOption `json:"filterOptions"`
	Filters       FilterState               `json:"filters"`
	Columns       ColumnRoles               `json:"columns"`
	TotalRows     int                       `json:"totalRows"`
	FilteredRows  int                       `json:"filteredRows"`
}
