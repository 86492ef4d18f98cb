package storage

import "github.com/pkg/errors"

// ErrNotFound indica que a chave nunca foi persistida
var ErrNotFound = errors.New("chave não encontrada no armazenamento local")

// Store é a porta de persistência local chave → JSON. Os repositórios
// tratam qualquer erro de leitura como "usar o valor padrão"; a corrupção
// nunca é propagada ao usuário.
type Store interface {
	Load(key string, out any) error
	Save(key string, value any) error
}
