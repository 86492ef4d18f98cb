package domain

import "strings"

// ColumnRoles mapeia os papéis semânticos do dashboard para os cabeçalhos
// reais do dataset. Um papel não resolvido fica como string vazia e todo
// consumidor trata essa dimensão como ausente.
type ColumnRoles struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Product  string `json:"product"`
	Revenue  string `json:"revenue"`
	Source   string `json:"source"`
	Campaign string `json:"campaign"`
	Content  string `json:"content"`
}

// roleSpec define as palavras-chave e a posição preferida de um papel.
// As posições vêm do layout dos relatórios Perfect Pay.
type roleSpec struct {
	keywords []string
	hint     int
}

var (
	dateSpec     = roleSpec{keywords: []string{"data venda", "data"}, hint: 1}
	statusSpec   = roleSpec{keywords: []string{"status"}, hint: 5}
	productSpec  = roleSpec{keywords: []string{"produto"}, hint: 8}
	revenueSpec  = roleSpec{keywords: []string{"valor da venda", "valor"}, hint: 12}
	sourceSpec   = roleSpec{keywords: []string{"utm_source", "source"}, hint: 29}
	campaignSpec = roleSpec{keywords: []string{"utm_campaign", "campanha"}, hint: 31}
	contentSpec  = roleSpec{keywords: []string{"utm_content", "conteúdo"}, hint: 33}
)

// ResolveColumns resolve todos os papéis para a lista de cabeçalhos dada.
// Deve ser reavaliado a cada troca de dataset.
func ResolveColumns(headers []string) ColumnRoles {
	return ColumnRoles{
		Date:     resolveRole(headers, dateSpec),
		Status:   resolveRole(headers, statusSpec),
		Product:  resolveRole(headers, productSpec),
		Revenue:  resolveRole(headers, revenueSpec),
		Source:   resolveRole(headers, sourceSpec),
		Campaign: resolveRole(headers, campaignSpec),
		Content:  resolveRole(headers, contentSpec),
	}
}

// resolveRole é total: um papel sem correspondência resolve para "".
func resolveRole(headers []string, spec roleSpec) string {
	if spec.hint >= 0 && spec.hint < len(headers) {
		return headers[spec.hint]
	}

	for _, keyword := range spec.keywords {
		kw := strings.ToLower(keyword)
		for _, header := range headers {
			h := strings.ToLower(header)
			if h == kw || strings.Contains(h, kw) {
				return header
			}
		}
	}

	return ""
}

// Categorical retorna as colunas resolvidas que servem de filtro categórico
func (c ColumnRoles) Categorical() []string {
	cols := make([]string, 0, 5)
	for _, col := range []string{c.Status, c.Product, c.Source, c.Campaign, c.Content} {
		if col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// GuessRevenueHeader aplica a heurística de receita usada pelo histórico,
// independente da resolução de papéis do dashboard.
func GuessRevenueHeader(headers []string) string {
	for _, header := range headers {
		h := strings.ToLower(header)
		if strings.Contains(h, "valor") || strings.Contains(h, "faturamento") {
			return header
		}
	}
	return ""
}
