package domain

// Settings são os ajustes manuais do usuário. Persistem independentemente
// do dataset carregado e não são zerados em uma nova importação.
type Settings struct {
	GeneralInvestment float64            `json:"generalInvestment"`
	FrozenBalance     float64            `json:"frozenBalance"`
	GroupInvestments  map[string]float64 `json:"groupInvestments"`
	LinkedFilters     bool               `json:"linkedFilters"`
}

// DefaultSettings devolve os valores usados quando nada foi persistido
func DefaultSettings() Settings {
	return Settings{
		GroupInvestments: map[string]float64{},
		LinkedFilters:    true,
	}
}

// GroupInvestment retorna o investimento registrado para um grupo (0 se ausente)
func (s Settings) GroupInvestment(key string) float64 {
	return s.GroupInvestments[key]
}
