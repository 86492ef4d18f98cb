package storage

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore persiste cada chave como um arquivo JSON dentro de um
// diretório de dados. É o equivalente servidor do localStorage do
// navegador: melhor esforço, sem versionamento.
type FileStore struct {
	dir string
}

// NewFileStore cria o diretório de dados se necessário
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de dados %s", dir)
	}

	return &FileStore{dir: dir}, nil
}

// Load decodifica o JSON persistido para a chave. Retorna ErrNotFound se
// o arquivo não existe; erros de decodificação são devolvidos para que o
// chamador aplique o valor padrão.
func (s *FileStore) Load(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar chave %s", key)
	}

	return nil
}

// Save grava o valor de forma atômica (arquivo temporário + rename)
func (s *FileStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao codificar chave %s", key)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar chave %s", key)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrapf(err, "erro ao publicar chave %s", key)
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
