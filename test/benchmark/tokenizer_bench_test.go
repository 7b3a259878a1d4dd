package benchmark

import (
	"testing"

	"github.com/AziizBg/ri/internal/textnorm"
)

const benchText = "Les moteurs de recherche analysent, indexent et classent " +
	"des collections de documents pour répondre rapidement aux requêtes " +
	"des utilisateurs avec des modèles de pertinence variés."

// BenchmarkNormalizeFrench measures the full pipeline: lowercasing,
// punctuation splitting, stop-word removal, and stemming.
func BenchmarkNormalizeFrench(b *testing.B) {
	norm := textnorm.New(textnorm.Config{Language: textnorm.LanguageFrench})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = norm.Normalize(benchText)
	}
}

// BenchmarkNormalizeEnglish measures the english variant on the same
// input size.
func BenchmarkNormalizeEnglish(b *testing.B) {
	norm := textnorm.New(textnorm.Config{Language: textnorm.LanguageEnglish})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = norm.Normalize(benchText)
	}
}
