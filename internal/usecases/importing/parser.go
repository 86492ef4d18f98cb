package importing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/utmdash/utmdash-api/internal/domain"
)

// ErrEmptyInput indica um CSV sem nenhuma linha não vazia. O chamador
// deve manter o dataset anterior intacto.
var ErrEmptyInput = errors.New("CSV sem linhas não vazias")

// brazilianDecimal reconhece números no formato brasileiro (1.234,56)
var brazilianDecimal = regexp.MustCompile(`^-?[0-9.]+,[0-9]+$`)

// ParseCSV converte o texto bruto de um relatório em um dataset tipado.
// A primeira linha não vazia é o cabeçalho; campos faltantes em linhas
// curtas viram string vazia.
func ParseCSV(text string) (*domain.Dataset, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	headers := parseHeaders(lines[0])

	rows := make([]domain.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)

		row := make(domain.Row, len(headers))
		for i, header := range headers {
			raw := ""
			if i < len(values) {
				raw = values[i]
			}
			row[header] = cleanAndParse(raw)
		}
		rows = append(rows, row)
	}

	types := make(map[string]domain.ColumnType, len(headers))
	for _, header := range headers {
		types[header] = domain.ColumnString
		for _, row := range rows {
			if _, ok := row[header].(float64); ok {
				types[header] = domain.ColumnNumber
				break
			}
		}
	}

	return &domain.Dataset{Headers: headers, Rows: rows, Types: types}, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseHeaders(line string) []string {
	fields := strings.Split(line, ",")
	headers := make([]string, len(fields))
	for i, field := range fields {
		headers[i] = stripQuotes(strings.TrimSpace(field))
	}
	return headers
}

// splitFields divide a linha nas vírgulas fora de trechos entre aspas.
// É um único nível de aspas pareadas, não um parser RFC 4180 completo:
// quebras de linha dentro de aspas não são suportadas.
func splitFields(line string) []string {
	fields := make([]string, 0, 8)
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))

	return fields
}

// stripQuotes remove uma aspa inicial e uma final, se presentes
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// cleanAndParse limpa a célula e tenta a coerção numérica. Valores com
// marcador de moeda, percentual ou padrão decimal brasileiro são
// normalizados antes: com ponto e vírgula presentes, o ponto é separador
// de milhar; só vírgula vira ponto decimal.
func cleanAndParse(value string) any {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	cleaned := stripQuotes(strings.TrimSpace(value))

	if strings.Contains(cleaned, "R$") || strings.Contains(cleaned, "%") || brazilianDecimal.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, "R$", "")
		cleaned = strings.ReplaceAll(cleaned, "%", "")
		cleaned = strings.Join(strings.Fields(cleaned), "")

		if strings.Contains(cleaned, ",") && strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else if strings.Contains(cleaned, ",") {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	}

	if cleaned == "" {
		return ""
	}

	if num, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return num
	}

	return cleaned
}
