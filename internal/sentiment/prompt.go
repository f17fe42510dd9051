package sentiment

import "strings"

const promptTemplate = `Você é um analisador de sentimentos de avaliações de produtos de e-commerce em português.

Analise o sentimento REAL do texto abaixo, e não apenas as palavras usadas. Preste atenção a ironia e sarcasmo: elogios seguidos de uma ressalva que os anula indicam sentimento negativo.

Exemplos:
- "Ótimo produto... se você gosta de coisas que quebram na primeira semana." -> negative
- "Maravilhoso, chegou só três semanas depois do prazo." -> negative
- "Excelente, exatamente como descrito e chegou rápido." -> positive
- "O produto chegou no prazo. Ainda não testei." -> neutral

Responda APENAS com um objeto JSON, sem texto adicional e sem blocos de código, no formato:
{"label": "positive" | "negative" | "neutral", "score": número entre -1.0 e 1.0}

Onde score -1.0 é totalmente negativo, 0.0 é neutro e 1.0 é totalmente positivo.

Texto:
"""
{{TEXT}}
"""`

// BuildPrompt embeds the review text in the fixed classification prompt.
func BuildPrompt(text string) string {
	return strings.Replace(promptTemplate, "{{TEXT}}", text, 1)
}
