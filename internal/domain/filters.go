package domain

// ViewMode identifica cada aba do dashboard. Quando os filtros estão
// desvinculados, cada aba mantém seu próprio FilterState.
type ViewMode string

const (
	ViewCentral ViewMode = "central"
	ViewUTMDash ViewMode = "utmdash"
	ViewGraphs  ViewMode = "graphs"
	ViewHistory ViewMode = "history"
)

// DatePreset é um atalho relativo de período
type DatePreset string

const (
	PresetAll    DatePreset = "all"
	PresetToday  DatePreset = "today"
	Preset7Days  DatePreset = "7days"
	Preset15Days DatePreset = "15days"
	Preset30Days DatePreset = "30days"
	PresetCustom DatePreset = "custom"
)

// FilterState é o estado imutável de filtros de uma aba. Ausência de uma
// coluna no mapa equivale a um conjunto de valores vazio (sem restrição).
type FilterState struct {
	Columns     map[string][]string `json:"columns"`
	Search      string              `json:"search"`
	Preset      DatePreset          `json:"preset"`
	CustomStart string              `json:"customStart,omitempty"`
	CustomEnd   string              `json:"customEnd,omitempty"`
}

// NewFilterState cria um estado sem restrições
func NewFilterState() FilterState {
	return FilterState{
		Columns: map[string][]string{},
		Preset:  PresetAll,
	}
}

// Accepted retorna o conjunto de valores aceitos para uma coluna
func (f FilterState) Accepted(column string) []string {
	return f.Columns[column]
}

// Toggle devolve um novo estado com o valor adicionado ao conjunto da
// coluna, ou removido se já presente. Um conjunto que esvazia permanece
// no mapa e equivale a coluna sem restrição.
func (f FilterState) Toggle(column, value string) FilterState {
	next := f.clone()

	current := next.Columns[column]
	updated := make([]string, 0, len(current)+1)
	removed := false
	for _, v := range current {
		if v == value {
			removed = true
			continue
		}
		updated = append(updated, v)
	}
	if !removed {
		updated = append(updated, value)
	}

	next.Columns[column] = updated
	return next
}

// WithSearch devolve um novo estado com o termo de busca atualizado
func (f FilterState) WithSearch(term string) FilterState {
	next := f.clone()
	next.Search = term
	return next
}

// WithPreset devolve um novo estado com o preset de período atualizado
func (f FilterState) WithPreset(preset DatePreset) FilterState {
	next := f.clone()
	next.Preset = preset
	if preset != PresetCustom {
		next.CustomStart = ""
		next.CustomEnd = ""
	}
	return next
}

// WithCustomRange devolve um novo estado com o período customizado
func (f FilterState) WithCustomRange(start, end string) FilterState {
	next := f.clone()
	next.Preset = PresetCustom
	next.CustomStart = start
	next.CustomEnd = end
	return next
}

// Clear devolve um estado sem nenhuma restrição ativa
func (f FilterState) Clear() FilterState {
	return NewFilterState()
}

func (f FilterState) clone() FilterState {
	columns := make(map[string][]string, len(f.Columns))
	for col, vals := range f.Columns {
		copied := make([]string, len(vals))
		copy(copied, vals)
		columns[col] = copied
	}

	f.Columns = columns
	return f
}
