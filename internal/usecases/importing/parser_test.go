package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utmdash/utmdash-api/internal/domain"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		validate func(t *testing.T, ds *domain.Dataset)
	}{
		{
			name:    "Entrada vazia retorna erro",
			input:   "",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "Somente linhas em branco retorna erro",
			input:   "\n\n   \n",
			wantErr: ErrEmptyInput,
		},
		{
			name:  "Apenas cabeçalho produz dataset sem linhas",
			input: "Data,Produto,Valor",
			validate: func(t *testing.T, ds *domain.Dataset) {
				assert.Equal(t, []string{"Data", "Produto", "Valor"}, ds.Headers)
				assert.Len(t, ds.Rows, 0)
			},
		},
		{
			name:  "Moeda brasileira vira número",
			input: "Produto,Valor\nCurso,\"R$ 1.234,56\"",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, 1234.56, ds.Rows[0]["Valor"])
				assert.Equal(t, domain.ColumnNumber, ds.Types["Valor"])
			},
		},
		{
			name:  "Percentual vira número",
			input: "Produto,Taxa\nCurso,\"45,5%\"",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, 45.5, ds.Rows[0]["Taxa"])
			},
		},
		{
			name:  "Decimal brasileiro sem marcador vira número",
			input: "Produto,Valor\nCurso,\"19,90\"",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, 19.9, ds.Rows[0]["Valor"])
			},
		},
		{
			name:  "Texto comum permanece string",
			input: "Produto,Status\nCurso de Tráfego,approved",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, "Curso de Tráfego", ds.Rows[0]["Produto"])
				assert.Equal(t, "approved", ds.Rows[0]["Status"])
				assert.Equal(t, domain.ColumnString, ds.Types["Status"])
			},
		},
		{
			name:  "Vírgula dentro de aspas não divide o campo",
			input: "Produto,Valor\n\"Curso, edição especial\",100",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, "Curso, edição especial", ds.Rows[0]["Produto"])
				assert.Equal(t, float64(100), ds.Rows[0]["Valor"])
			},
		},
		{
			name:  "Linha curta preenche faltantes com vazio",
			input: "Data,Produto,Valor\n01/02/2024,Curso",
			validate: func(t *testing.T, ds *domain.Dataset) {
				require.Len(t, ds.Rows, 1)
				assert.Equal(t, "", ds.Rows[0]["Valor"])
			},
		},
		{
			name:  "Linhas em branco no meio são ignoradas",
			input: "Produto,Valor\nA,10\n\nB,20\r\n\r\nC,30",
			validate: func(t *testing.T, ds *domain.Dataset) {
				assert.Len(t, ds.Rows, 3)
			},
		},
		{
			name:  "Tipo numérico vale com a primeira célula numérica",
			input: "Produto,Valor\nA,indefinido\nB,\"R$ 50,00\"",
			validate: func(t *testing.T, ds *domain.Dataset) {
				assert.Equal(t, domain.ColumnNumber, ds.Types["Valor"])
				assert.Equal(t, "indefinido", ds.Rows[0]["Valor"])
				assert.Equal(t, 50.0, ds.Rows[1]["Valor"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ParseCSV(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, ds)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, ds)
			tt.validate(t, ds)
		})
	}
}

func TestCleanAndParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"Vazio permanece vazio", "   ", ""},
		{"Moeda com milhar", "R$ 1.234,56", 1234.56},
		{"Moeda negativa", "R$ -10,50", -10.5},
		{"Percentual", "45,5%", 45.5},
		{"Decimal brasileiro", "1.234,56", 1234.56},
		{"Número com ponto decimal", "99.9", 99.9},
		{"Inteiro", "42", float64(42)},
		{"Data não vira número", "01/02/2024", "01/02/2024"},
		{"Texto com aspas perde as aspas", `"approved"`, "approved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanAndParse(tt.input))
		})
	}
}
