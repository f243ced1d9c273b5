package finance

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSector é a entrada usada para setores não mapeados
const DefaultSector = "Outro"

// SectorMultiples contém as faixas de múltiplos de mercado de um setor
type SectorMultiples struct {
	Sector     string  `json:"setor"`
	EbitdaMin  float64 `json:"ebitdaMin"`
	EbitdaMax  float64 `json:"ebitdaMax"`
	ReceitaMin float64 `json:"receitaMin"`
	ReceitaMax float64 `json:"receitaMax"`
}

// EbitdaAverage retorna a média da faixa de múltiplos de EBITDA
func (m SectorMultiples) EbitdaAverage() float64 {
	return (m.EbitdaMin + m.EbitdaMax) / 2
}

// ReceitaAverage retorna a média da faixa de múltiplos de receita
func (m SectorMultiples) ReceitaAverage() float64 {
	return (m.ReceitaMin + m.ReceitaMax) / 2
}

// Tabela constante carregada na inicialização do processo e nunca alterada.
var sectorTable = newSectorTable([]SectorMultiples{
	{Sector: "Tecnologia", EbitdaMin: 8, EbitdaMax: 15, ReceitaMin: 2, ReceitaMax: 5},
	{Sector: "Saúde", EbitdaMin: 7, EbitdaMax: 12, ReceitaMin: 1.5, ReceitaMax: 3},
	{Sector: "Financeiro", EbitdaMin: 8, EbitdaMax: 12, ReceitaMin: 2, ReceitaMax: 4},
	{Sector: "Educação", EbitdaMin: 6, EbitdaMax: 10, ReceitaMin: 1.5, ReceitaMax: 3},
	{Sector: "Audiovisual", EbitdaMin: 5, EbitdaMax: 9, ReceitaMin: 1, ReceitaMax: 2.5},
	{Sector: "Indústria", EbitdaMin: 5, EbitdaMax: 9, ReceitaMin: 0.8, ReceitaMax: 1.8},
	{Sector: "Agronegócio", EbitdaMin: 5, EbitdaMax: 8, ReceitaMin: 0.8, ReceitaMax: 1.5},
	{Sector: "Serviços", EbitdaMin: 4, EbitdaMax: 8, ReceitaMin: 1, ReceitaMax: 2},
	{Sector: "Varejo", EbitdaMin: 4, EbitdaMax: 8, ReceitaMin: 0.5, ReceitaMax: 1.5},
	{Sector: "Alimentação", EbitdaMin: 4, EbitdaMax: 7, ReceitaMin: 0.5, ReceitaMax: 1.2},
	{Sector: "Construção", EbitdaMin: 4, EbitdaMax: 7, ReceitaMin: 0.5, ReceitaMax: 1.2},
	{Sector: DefaultSector, EbitdaMin: 4, EbitdaMax: 8, ReceitaMin: 0.8, ReceitaMax: 2},
})

func newSectorTable(entries []SectorMultiples) map[string]SectorMultiples {
	table := make(map[string]SectorMultiples, len(entries))
	for _, entry := range entries {
		table[sectorKey(entry.Sector)] = entry
	}
	return table
}

// sectorKey normaliza o nome do setor ignorando caixa, acentos e espaços nas pontas
func sectorKey(sector string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	key, _, err := transform.String(t, strings.TrimSpace(sector))
	if err != nil {
		key = strings.TrimSpace(sector)
	}
	return strings.ToLower(key)
}

// MultiplesFor retorna os múltiplos do setor ou a entrada "Outro" quando o setor não está mapeado
func MultiplesFor(sector string) SectorMultiples {
	if entry, ok := sectorTable[sectorKey(sector)]; ok {
		return entry
	}
	return sectorTable[sectorKey(DefaultSector)]
}

// IsMappedSector indica se o setor possui entrada própria na tabela
func IsMappedSector(sector string) bool {
	_, ok := sectorTable[sectorKey(sector)]
	return ok
}

// Sectors retorna uma cópia da tabela ordenada pelo nome do setor, com "Outro" por último
func Sectors() []SectorMultiples {
	entries := make([]SectorMultiples, 0, len(sectorTable))
	for _, entry := range sectorTable {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Sector == DefaultSector {
			return false
		}
		if entries[j].Sector == DefaultSector {
			return true
		}
		return entries[i].Sector < entries[j].Sector
	})

	return entries
}
