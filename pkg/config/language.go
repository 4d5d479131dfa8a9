package config

import (
	"fmt"

	"github.com/decker502/casualui/pkg/embedded"
	"github.com/gocarina/gocsv"
)

// LanguagesPath 内嵌的语言表路径
const LanguagesPath = "data/languages.csv"

// Language 语言表中的一行
type Language struct {
	Index int    `csv:"index"`
	Code  string `csv:"code"`
	Name  string `csv:"name"`
}

// DefaultLanguages 语言表缺失时的内置列表
func DefaultLanguages() []Language {
	return []Language{
		{Index: 0, Code: "en", Name: "English"},
		{Index: 1, Code: "sv", Name: "Svenska"},
		{Index: 2, Code: "es", Name: "Español"},
		{Index: 3, Code: "fil", Name: "Filipino"},
	}
}

// ParseLanguages 解析 CSV 语言表，索引必须从 0 开始连续
func ParseLanguages(data []byte) ([]Language, error) {
	var langs []Language
	if err := gocsv.UnmarshalBytes(data, &langs); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("language table is empty")
	}
	for i, l := range langs {
		if l.Index != i {
			return nil, fmt.Errorf("language table: row %d has index %d", i, l.Index)
		}
	}
	return langs, nil
}

// LoadLanguages 从内嵌数据加载语言表
func LoadLanguages() ([]Language, error) {
	data, err := embedded.ReadFile(LanguagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read language table: %w", err)
	}
	return ParseLanguages(data)
}
