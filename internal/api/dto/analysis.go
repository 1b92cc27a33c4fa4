package dto

import (
	"cinepulse/pkg/sentiment"
)

// AnalyzeRequest is the body of POST /analisar.
type AnalyzeRequest struct {
	Filme string `json:"filme" validate:"required"`
}

// QuantitativeAnalysis is the tally part of an analysis response.
type QuantitativeAnalysis struct {
	Positivos int                          `json:"positivos"`
	Negativos int                          `json:"negativos"`
	NotaMedia float64                      `json:"nota_media"`
	PorIdioma map[Language]sentiment.Tally `json:"por_idioma,omitempty"`
}

// AnalysisResponse is the body returned by POST /analisar.
type AnalysisResponse struct {
	FilmeBuscado        string               `json:"filme_buscado"`
	Metadados           *MovieMetadata       `json:"metadados"`
	AnaliseQuantitativa QuantitativeAnalysis `json:"analise_quantitativa"`
	AnaliseQualitativa  SummaryResult        `json:"analise_qualitativa"`
}
