package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/domain"
	"github.com/utmdash/utmdash-api/internal/usecases/importing"
	"github.com/utmdash/utmdash-api/pkg/apiErrors"
	"github.com/utmdash/utmdash-api/pkg/log"
)

// maxUploadBytes limita o tamanho do CSV enviado (32 MiB)
const maxUploadBytes = 32 << 20

type importResponse struct {
	Entry   *historySummary `json:"entry,omitempty"`
	Rows    int             `json:"rows"`
	Headers []string        `json:"headers"`
}

func importedAs(entry *domain.HistoryEntry) *historySummary {
	if entry == nil {
		return nil
	}
	summary := summarize(entry)
	return &summary
}

type importLinkRequest struct {
	URL string `json:"url"`
}

// ImportDataset recebe um CSV bruto no corpo da requisição ou como
// arquivo multipart no campo "file" e o torna o dataset ativo
func ImportDataset(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("importação: recebendo upload de CSV")

		text, label, err := readUpload(r)
		if err != nil {
			logger.WithError(err).Warn("importação: upload ilegível")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o CSV enviado", nil)
			return
		}

		dataset, entry, err := service.ImportCSV(text, label)
		if err != nil {
			if errors.Is(err, importing.ErrEmptyInput) {
				logger.Warn("importação: CSV sem linhas não vazias")
				apiErrors.WriteError(w, apiErrors.ErrEmptyCSV, "O CSV enviado não contém dados", nil)
				return
			}

			logger.WithError(err).Error("importação: falha ao importar CSV")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar o CSV", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, logger, importResponse{
			Entry:   importedAs(entry),
			Rows:    len(dataset.Rows),
			Headers: dataset.Headers,
		})
	})
}

// ImportDatasetFromLink importa o CSV exportado de uma planilha
// publicada. Links no modo de edição são aceitos e reescritos.
func ImportDatasetFromLink(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req importLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("importação: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.URL) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL da planilha não informada", nil)
			return
		}

		logger.WithField("url", req.URL).Info("importação: buscando planilha via link")

		dataset, entry, err := service.ImportFromURL(req.URL)
		if err != nil {
			if errors.Is(err, importing.ErrEmptyInput) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyCSV, "A planilha não contém dados", nil)
				return
			}

			logger.WithError(err).Error("importação: falha ao buscar planilha via link")
			apiErrors.WriteError(w, apiErrors.ErrFetchFailed, "Não foi possível buscar a planilha informada", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, logger, importResponse{
			Entry:   importedAs(entry),
			Rows:    len(dataset.Rows),
			Headers: dataset.Headers,
		})
	})
}

// readUpload extrai o texto do CSV da requisição, aceitando tanto o
// corpo bruto quanto um formulário multipart com o campo "file"
func readUpload(r *http.Request) (string, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", "", errors.Wrap(err, "erro ao interpretar formulário multipart")
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", errors.Wrap(err, "campo de arquivo ausente")
		}
		defer file.Close()

		body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", "", errors.Wrap(err, "erro ao ler arquivo enviado")
		}

		label := r.FormValue("name")
		if label == "" {
			label = header.Filename
		}

		return string(body), label, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return "", "", errors.Wrap(err, "erro ao ler corpo da requisição")
	}

	label := r.URL.Query().Get("name")
	if label == "" {
		label = "Arquivo CSV"
	}

	return string(body), label, nil
}
