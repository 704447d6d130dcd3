package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Словарь технических терминов, которые считаются ключевыми словами даже
// в нижнем регистре.
var techTerms = map[string]struct{}{}

var techPhrases = []string{
	"machine learning", "deep learning", "data science", "data analysis",
	"rest api", "active directory", "help desk", "service desk",
	"technical support", "it support", "desktop support", "customer service",
	"unit testing", "distributed systems", "cloud computing", "system design",
	"office 365", "react native", "project management", "version control",
}

func init() {
	for _, t := range []string{
		"go", "golang", "python", "java", "javascript", "typescript", "ruby", "rust",
		"c++", "c#", "php", "kotlin", "swift", "scala", "sql", "nosql", "html", "css",
		"react", "vue", "angular", "svelte", "next.js", "node.js", "express", "django",
		"flask", "spring", "graphql", "rest", "grpc", "postgresql", "postgres", "mysql",
		"mongodb", "redis", "elasticsearch", "kafka", "rabbitmq", "aws", "azure", "gcp",
		"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "git", "linux",
		"ci/cd", "microservices", "agile", "scrum", "tdd", "networking", "troubleshooting",
		"helpdesk", "windows", "macos", "jira", "tailwind", "supabase", "firebase",
		"pandas", "tensorflow", "pytorch", "llm", "devops", "serverless",
	} {
		techTerms[t] = struct{}{}
	}
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an and are as at be but by for from has have in into is it its of on or our
		that the their this to we will with you your who what when where which while within
		about across after all also any can could do does each etc if may more most must
		not only other over per should such than then there these they those through under
		using via would able ability years year plus nice strong good great excellent
		solid deep proven experience experienced knowledge understanding familiarity
		requires required require requirements preferred qualifications responsibilities
		skills skill work working team teams role position job candidate candidates join
		including include includes based new help build building develop developing
		senior junior lead principal staff engineer engineers developer developers
		manager intern hands looking seeking ideal bonus degree bachelor master`) {
		stopwords[w] = struct{}{}
	}
}

var reToken = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#./-]*`)

type candidate struct {
	text string
	pos  int
}

// ExtractKeywords выделяет из описания вакансии ключевые слова и фразы
// в порядке первого появления, без повторов (без учёта регистра).
// Кандидаты: термины словаря, аббревиатуры (AWS), слова с заглавной
// буквой не в начале предложения (Python), смешанный регистр (GraphQL).
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	lower := strings.ToLower(text)
	var found []candidate
	type span struct{ from, to int }
	var covered []span

	for _, phrase := range techPhrases {
		if i := indexWord(lower, phrase); i >= 0 {
			shown := phrase
			if len(lower) == len(text) {
				shown = text[i : i+len(phrase)]
			}
			found = append(found, candidate{text: shown, pos: i})
			covered = append(covered, span{i, i + len(phrase)})
		}
	}

	for _, loc := range reToken.FindAllStringIndex(text, -1) {
		for _, tok := range splitToken(text, loc[0], loc[1]) {
			inPhrase := false
			for _, s := range covered {
				if tok.pos >= s.from && tok.pos < s.to {
					inPhrase = true
					break
				}
			}
			if inPhrase || !isKeyword(tok.text, sentenceStart(text, tok.pos)) {
				continue
			}
			found = append(found, tok)
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	out := make([]string, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, c := range found {
		key := strings.ToLower(c.text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c.text)
	}
	return out
}

// splitToken срезает хвостовую пунктуацию и делит "AWS/GCP" на части,
// кроме словарных терминов вроде "ci/cd".
func splitToken(text string, from, to int) []candidate {
	raw := strings.TrimRight(text[from:to], "./-")
	if raw == "" {
		return nil
	}
	if _, ok := techTerms[strings.ToLower(raw)]; ok || !strings.Contains(raw, "/") {
		return []candidate{{text: raw, pos: from}}
	}
	var out []candidate
	offset := from
	for _, part := range strings.Split(raw, "/") {
		if p := strings.TrimRight(part, ".-"); p != "" {
			out = append(out, candidate{text: p, pos: offset})
		}
		offset += len(part) + 1
	}
	return out
}

func isKeyword(tok string, atSentenceStart bool) bool {
	lower := strings.ToLower(tok)
	if _, ok := techTerms[lower]; ok {
		return true
	}
	letters, upper := 0, 0
	for _, r := range tok {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	// аббревиатуры: AWS, SQL, IT
	if letters >= 2 && upper == letters {
		return true
	}
	if _, ok := stopwords[lower]; ok {
		return false
	}
	if len([]rune(tok)) < 2 {
		return false
	}
	first := []rune(tok)[0]
	// смешанный регистр: GraphQL, JavaScript
	if upper >= 2 && unicode.IsUpper(first) {
		return true
	}
	return unicode.IsUpper(first) && !atSentenceStart
}

func sentenceStart(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch c := text[i]; {
		case c == ' ' || c == '\t' || c == '(' || c == '"' || c == '\'':
			continue
		case c == '.' || c == '!' || c == '?' || c == ':' || c == '\n' || c == ';' || c == '-' || c == '*':
			return true
		default:
			return false
		}
	}
	return true
}

// indexWord ищет phrase в lower целым словом.
func indexWord(lower, phrase string) int {
	start := 0
	for {
		i := strings.Index(lower[start:], phrase)
		if i < 0 {
			return -1
		}
		i += start
		end := i + len(phrase)
		if (i == 0 || !isWordByte(lower[i-1])) && (end == len(lower) || !isWordByte(lower[end])) {
			return i
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
