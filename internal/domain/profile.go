package domain

import "strings"

// Sector define a categoria do negócio usada para escolher os templates de conteúdo
type Sector string

const (
	SectorRestaurant Sector = "restaurant"
	SectorBoutique   Sector = "boutique"
	SectorService    Sector = "service"
)

// Normalize retorna o setor conhecido ou SectorService para qualquer valor não reconhecido
func (s Sector) Normalize() Sector {
	switch Sector(strings.ToLower(strings.TrimSpace(string(s)))) {
	case SectorRestaurant:
		return SectorRestaurant
	case SectorBoutique:
		return SectorBoutique
	default:
		return SectorService
	}
}

// ParseSector aceita apenas os setores conhecidos
func ParseSector(value string) (Sector, bool) {
	switch Sector(strings.ToLower(strings.TrimSpace(value))) {
	case SectorRestaurant:
		return SectorRestaurant, true
	case SectorBoutique:
		return SectorBoutique, true
	case SectorService:
		return SectorService, true
	}
	return "", false
}

// Tone define o estilo de comunicação dos textos gerados
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneDynamic      Tone = "dynamic"
)

// ParseTone aceita os valores canônicos e os valores legados em francês.
// Qualquer outro valor cai em ToneProfessional.
func ParseTone(value string) Tone {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "friendly", "amical":
		return ToneFriendly
	case "dynamic", "dynamique":
		return ToneDynamic
	default:
		return ToneProfessional
	}
}

// Normalize retorna o tom conhecido ou ToneProfessional
func (t Tone) Normalize() Tone {
	return ParseTone(string(t))
}

// Season é a estação derivada do mês corrente
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasons = [4]Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// SeasonOf usa o mês base zero dividido por 3 (janeiro a março = primavera)
func SeasonOf(month int) Season {
	if month < 1 || month > 12 {
		month = 1
	}
	return seasons[(month-1)/3]
}

// Profile é a visão do usuário consumida pelo gerador de conteúdo
type Profile struct {
	BusinessName string `json:"business_name"`
	Sector       Sector `json:"sector"`
	Tone         Tone   `json:"tone"`
}
