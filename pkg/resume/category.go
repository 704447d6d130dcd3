package resume

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category: фиксированный набор корзин для навыков.
type Category string

const (
	CategoryLanguages Category = "languages"
	CategoryFrontend  Category = "frontend"
	CategoryBackend   Category = "backend"
	CategoryDatabases Category = "databases"
	CategoryCloud     Category = "cloud"
	CategoryDevOps    Category = "devops"
	CategoryTools     Category = "tools"
	CategoryConcepts  Category = "concepts"
	CategoryITSupport Category = "it_support"
	CategoryOther     Category = "other"
)

// Categories: все корзины в порядке вывода.
var Categories = []Category{
	CategoryLanguages,
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabases,
	CategoryCloud,
	CategoryDevOps,
	CategoryTools,
	CategoryConcepts,
	CategoryITSupport,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryLanguages: "Languages",
	CategoryFrontend:  "Frontend",
	CategoryBackend:   "Backend",
	CategoryDatabases: "Databases",
	CategoryCloud:     "Cloud",
	CategoryDevOps:    "DevOps",
	CategoryTools:     "Tools",
	CategoryConcepts:  "Concepts",
	CategoryITSupport: "IT Support",
	CategoryOther:     "Other",
}

// Label возвращает заголовок категории для вывода.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryOther]
}

// Classifier отображает сохранённые метки категорий на Category. Отображение
// тотальное: всё незнакомое попадает в CategoryOther.
type Classifier struct {
	aliases map[string]Category
}

// NewClassifier знает только канонические ключи и их заголовки.
// Дополнительные алиасы ("AI/ML" и подобные) решает продукт, они приходят
// через WithAliases / LoadAliases.
func NewClassifier() *Classifier {
	c := &Classifier{aliases: make(map[string]Category, len(Categories)*2)}
	for _, cat := range Categories {
		c.aliases[foldLabel(string(cat))] = cat
		c.aliases[foldLabel(cat.Label())] = cat
	}
	return c
}

// WithAliases возвращает копию классификатора, дополненную парами метка→категория.
// Алиас на неизвестную категорию считается ошибкой.
func (c *Classifier) WithAliases(aliases map[string]string) (*Classifier, error) {
	out := &Classifier{aliases: make(map[string]Category, len(c.aliases)+len(aliases))}
	for k, v := range c.aliases {
		out.aliases[k] = v
	}
	for label, target := range aliases {
		cat, ok := out.aliases[foldLabel(target)]
		if !ok {
			return nil, fmt.Errorf("alias %q: unknown category %q", label, target)
		}
		out.aliases[foldLabel(label)] = cat
	}
	return out, nil
}

// Classify возвращает корзину для сохранённой метки.
func (c *Classifier) Classify(label string) Category {
	if c == nil {
		return NewClassifier().Classify(label)
	}
	if cat, ok := c.aliases[foldLabel(label)]; ok {
		return cat
	}
	return CategoryOther
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases читает YAML-файл вида
//
//	aliases:
//	  "AI/ML": concepts
//	  "Help Desk": it_support
//
// и возвращает классификатор по умолчанию с этими алиасами. Пустой путь: файла нет.
func LoadAliases(path string) (*Classifier, error) {
	base := NewClassifier()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category aliases: %w", err)
	}
	var f aliasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse category aliases: %w", err)
	}
	return base.WithAliases(f.Aliases)
}

func foldLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
