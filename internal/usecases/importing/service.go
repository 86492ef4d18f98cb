package importing

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/infrastructure/repository"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/session"
	"github.com/utmdash/utmdash-api/pkg/log"
	"github.com/utmdash/utmdash-api/pkg/utils"
)

// editPath reconhece o sufixo de edição de links de planilha publicada
var editPath = regexp.MustCompile(`/edit.*$`)

// Importer é o serviço de importação de datasets
type Importer interface {
	ImportCSV(text, label string) (*domain.Dataset, *domain.HistoryEntry, error)
	ImportFromURL(url string) (*domain.Dataset, *domain.HistoryEntry, error)
	LoadFromHistory(id string) (*domain.Dataset, error)
}

// Service implementa Importer sobre a sessão ativa e o histórico
type Service struct {
	session     *session.Session
	historyRepo repository.HistoryRepository
}

// NewService cria uma nova instância do serviço de importação
func NewService(sess *session.Session, historyRepo repository.HistoryRepository) *Service {
	return &Service{
		session:     sess,
		historyRepo: historyRepo,
	}
}

// ImportCSV interpreta o texto, substitui o dataset da sessão e registra
// a importação no histórico. Em caso de falha de parse nada muda.
func (s *Service) ImportCSV(text, label string) (*domain.Dataset, *domain.HistoryEntry, error) {
	dataset, err := ParseCSV(text)
	if err != nil {
		return nil, nil, err
	}

	s.session.Replace(dataset)

	entry, err := s.historyRepo.Record(dataset, label)
	if err != nil {
		// O dataset já está ativo; falha de persistência não desfaz a importação
		log.L.WithError(err).Warn("importação: falha ao registrar entrada no histórico")
	}

	log.L.WithFields(log.Fields{
		"label":   label,
		"rows":    len(dataset.Rows),
		"columns": len(dataset.Headers),
	}).Info("importação: dataset carregado")

	return dataset, entry, nil
}

// ImportFromURL busca um CSV remoto. Links de planilha no modo de edição
// são reescritos para a exportação CSV publicada.
func (s *Service) ImportFromURL(url string) (*domain.Dataset, *domain.HistoryEntry, error) {
	target := url
	if editPath.MatchString(url) {
		target = editPath.ReplaceAllString(url, "/export?format=csv")
	}

	body, err := utils.MakeRequest(target)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao buscar planilha remota")
	}

	return s.ImportCSV(string(body), "Planilha via Link")
}

// LoadFromHistory ativa uma cópia do snapshot salvo; a entrada do
// histórico permanece intacta.
func (s *Service) LoadFromHistory(id string) (*domain.Dataset, error) {
	dataset, err := s.historyRepo.Load(id)
	if err != nil {
		return nil, err
	}

	s.session.Replace(dataset)

	log.L.WithFields(log.Fields{
		"entry_id": id,
		"rows":     len(dataset.Rows),
	}).Info("importação: dataset restaurado do histórico")

	return dataset, nil
}
