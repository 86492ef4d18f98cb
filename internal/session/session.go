package session

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/domain"
)

// ErrNoDataset indica que nenhum CSV foi importado ainda
var ErrNoDataset = errors.New("nenhum dataset carregado na sessão")

// Session guarda o dataset ativo e a resolução de colunas correspondente.
// O pipeline analítico é síncrono, mas os handlers HTTP rodam em paralelo,
// então o acesso é protegido por RWMutex.
type Session struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
	columns domain.ColumnRoles
}

// New cria uma sessão sem dataset
func New() *Session {
	return &Session{}
}

// Replace troca o dataset ativo e recalcula a resolução de colunas
func (s *Session) Replace(dataset *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = dataset
	s.columns = domain.ResolveColumns(dataset.Headers)
}

// Dataset devolve o dataset ativo e suas colunas resolvidas
func (s *Session) Dataset() (*domain.Dataset, domain.ColumnRoles, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, domain.ColumnRoles{}, ErrNoDataset
	}

	return s.dataset, s.columns, nil
}

// Clear descarta o dataset ativo
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = nil
	s.columns = domain.ColumnRoles{}
}
