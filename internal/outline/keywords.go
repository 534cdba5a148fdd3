package outline

// headingKeywords maps a language tag to words that commonly open a
// heading (chapter, section, part, overview, summary, conclusion,
// appendix). Matching is a literal, case-sensitive prefix check. The
// table is configuration, not behavior: adding a language does not touch
// the classifier.
var headingKeywords = map[string][]string{
	"en": {"Chapter", "Section", "Part", "Overview", "Summary", "Conclusion", "Appendix"},
	"es": {"Capítulo", "Sección", "Parte", "Resumen", "Conclusión", "Apéndice"},
	"fr": {"Chapitre", "Section", "Partie", "Aperçu", "Résumé", "Conclusion", "Annexe"},
	"de": {"Kapitel", "Abschnitt", "Teil", "Überblick", "Zusammenfassung", "Fazit", "Anhang"},
	"zh": {"章", "节", "部分", "概述", "摘要", "结论", "附录"},
	"ja": {"章", "節", "部", "概要", "要約", "結論", "付録"},
	"ko": {"장", "절", "부분", "개요", "요약", "결론", "부록"},
}
