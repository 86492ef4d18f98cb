package repository

import (
	"time"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/infrastructure/storage"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/pkg/log"
	"github.com/utmdash/utmdash-api/pkg/utils"
)

const historyKey = "history"

// maxHistoryEntries limita o histórico às 10 importações mais recentes
const maxHistoryEntries = 10

// ErrEntryNotFound indica um ID inexistente no histórico
var ErrEntryNotFound = errors.New("entrada do histórico não encontrada")

// HistoryRepository gerencia os snapshots de importação persistidos
type HistoryRepository interface {
	Record(dataset *domain.Dataset, name string) (*domain.HistoryEntry, error)
	List() []*domain.HistoryEntry
	Remove(id string) error
	Load(id string) (*domain.Dataset, error)
}

type historyRepository struct {
	store storage.Store
}

// NewHistoryRepository cria um repositório de histórico sobre a porta de
// persistência local
func NewHistoryRepository(store storage.Store) HistoryRepository {
	return &historyRepository{store: store}
}

// Record cria uma entrada a partir do dataset atual, insere no topo da
// lista e descarta a entrada mais antiga quando o limite é excedido.
func (r *historyRepository) Record(dataset *domain.Dataset, name string) (*domain.HistoryEntry, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da entrada do histórico")
	}

	revenueHeader := domain.GuessRevenueHeader(dataset.Headers)
	total := 0.0
	for _, row := range dataset.Rows {
		total += row.Number(revenueHeader)
	}

	entry := &domain.HistoryEntry{
		ID:        id,
		Name:      name,
		Timestamp: time.Now(),
		Data:      dataset.Clone(),
		Stats: domain.HistoryStats{
			Vendas:      len(dataset.Rows),
			Faturamento: total,
		},
	}

	entries := append([]*domain.HistoryEntry{entry}, r.List()...)
	if len(entries) > maxHistoryEntries {
		entries = entries[:maxHistoryEntries]
	}

	if err := r.store.Save(historyKey, entries); err != nil {
		return nil, err
	}

	return entry, nil
}

// List retorna as entradas da mais recente para a mais antiga. Um
// histórico corrompido ou ausente vale como vazio.
func (r *historyRepository) List() []*domain.HistoryEntry {
	var entries []*domain.HistoryEntry
	if err := r.store.Load(historyKey, &entries); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.L.WithError(err).Warn("histórico: dados persistidos ilegíveis, usando lista vazia")
		}
		return []*domain.HistoryEntry{}
	}

	return entries
}

// Remove apaga a entrada com o ID dado
func (r *historyRepository) Remove(id string) error {
	entries := r.List()
	filtered := make([]*domain.HistoryEntry, 0, len(entries))
	found := false
	for _, entry := range entries {
		if entry.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, entry)
	}

	if !found {
		return ErrEntryNotFound
	}

	return r.store.Save(historyKey, filtered)
}

// Load devolve uma cópia do dataset salvo, sem nunca mutar a entrada
func (r *historyRepository) Load(id string) (*domain.Dataset, error) {
	for _, entry := range r.List() {
		if entry.ID == id {
			return entry.Data.Clone(), nil
		}
	}

	return nil, ErrEntryNotFound
}
