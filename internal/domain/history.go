package domain

import "time"

// HistoryStats resume o dataset no momento da importação
type HistoryStats struct {
	Vendas      int     `json:"vendas"`
	Faturamento float64 `json:"faturamento"`
}

// HistoryEntry é um snapshot imutável de uma importação. O campo Data é
// uma cópia por valor, nunca compartilhada com o dataset ativo.
type HistoryEntry struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Timestamp time.Time    `json:"timestamp"`
	Data      *Dataset     `json:"data"`
	Stats     HistoryStats `json:"stats"`
}
