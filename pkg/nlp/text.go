package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpace = regexp.MustCompile(`\s+`)
	wordRune   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Normalize приводит строку к нижнему регистру и заменяет все "не-слова" на пробелы.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens режет нормализованный текст на слова.
func Tokens(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, " ")
}

// WordCount: число слов, разделённых пробелами.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в " ... rest api ..." но не в " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// Haystack: текст резюме, подготовленный для многократного поиска.
type Haystack struct {
	lower      string
	normalized string
}

func NewHaystack(text string) Haystack {
	return Haystack{lower: strings.ToLower(text), normalized: Normalize(text)}
}

// Короткие ключевые слова ищем целым словом, иначе "go" найдётся в "google".
const shortKeyword = 3

// Contains: регистронезависимый поиск подстроки. Ключевые слова из букв
// и цифр длиной до трёх символов ищутся только целым словом. Синонимы
// (k8s и kubernetes) не сопоставляются.
func (h Haystack) Contains(keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	if len([]rune(kw)) > shortKeyword || !wordRune.MatchString(kw) {
		return strings.Contains(h.lower, kw)
	}
	return ContainsPhrase(h.normalized, kw)
}
