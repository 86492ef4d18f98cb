package domain

import "strconv"

// ColumnType indica o tipo declarado de uma coluna do dataset
type ColumnType string

const (
	ColumnNumber ColumnType = "number"
	ColumnString ColumnType = "string"
)

// Row mapeia o nome do cabeçalho para o valor da célula.
// O valor é sempre float64 ou string, nunca ambos.
type Row map[string]any

// Dataset representa uma tabela tipada importada de um CSV
type Dataset struct {
	Headers []string              `json:"headers"`
	Rows    []Row                 `json:"rows"`
	Types   map[string]ColumnType `json:"types"`
}

// Number retorna o valor numérico da célula, ou 0 se a célula não for numérica
func (r Row) Number(header string) float64 {
	if v, ok := r[header].(float64); ok {
		return v
	}
	return 0
}

// Text retorna a representação textual da célula
func (r Row) Text(header string) string {
	switch v := r[header].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Clone devolve uma cópia profunda do dataset. O histórico guarda snapshots
// por valor, então a cópia nunca compartilha linhas com o dataset ativo.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}

	clone := &Dataset{
		Headers: make([]string, len(d.Headers)),
		Rows:    make([]Row, len(d.Rows)),
		Types:   make(map[string]ColumnType, len(d.Types)),
	}
	copy(clone.Headers, d.Headers)

	for i, row := range d.Rows {
		newRow := make(Row, len(row))
		for k, v := range row {
			newRow[k] = v
		}
		clone.Rows[i] = newRow
	}

	for k, v := range d.Types {
		clone.Types[k] = v
	}

	return clone
}
