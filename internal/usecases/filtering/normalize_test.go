package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanUTMSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Vazio vira orgânico", "", "organic"},
		{"TikTok Ads agrupa em tiktok", "TikTok Ads", "tiktok"},
		{"Facebook agrupa", "facebook-feed", "facebook"},
		{"FB abreviado agrupa em facebook", "FB", "facebook"},
		{"Instagram agrupa", "Instagram Stories", "instagram"},
		{"IG abreviado agrupa em instagram", "ig_bio", "instagram"},
		{"Google agrupa", "google-ads", "google"},
		{"Kwai agrupa", "KWAI", "kwai"},
		{"Fora do vocabulário passa intacto", "newsletter", "newsletter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanUTMSource(tt.input))
		})
	}
}

func TestCleanUTMCampaign(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Vazio vira n/a", "", "n/a"},
		{"Corta no primeiro pipe", "blackfriday|ad01|v2", "blackfriday"},
		{"Sem pipe passa intacto", "lancamento", "lancamento"},
		{"Espaços ao redor do pipe são aparados", "promo | ad02", "promo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanUTMCampaign(tt.input))
		})
	}
}

func TestParseSaleDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantOK  bool
	}{
		{"Data brasileira", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"Data brasileira com hora", "15/03/2024 18:42:00", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"Dia e mês sem zero", "2/1/2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"ISO", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"ISO com hora", "2024-03-15 10:00:00", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), true},
		{"Vazio falha", "", time.Time{}, false},
		{"Texto falha", "amanhã", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSaleDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "esperado %s, obtido %s", tt.want, got)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "15/03/2024", DateOnly("15/03/2024 18:42:00"))
	assert.Equal(t, "15/03/2024", DateOnly("15/03/2024"))
}
