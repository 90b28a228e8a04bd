package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrFrontMatter indicates the leading metadata block could not be decoded.
var ErrFrontMatter = errors.New("malformed metadata block")

// FrontMatter holds the document properties recognised in a leading
// YAML (---) or TOML (+++) block. Unknown keys are ignored.
type FrontMatter struct {
	Title       string      `yaml:"title" toml:"title"`
	Author      string      `yaml:"author" toml:"author"`
	Subject     string      `yaml:"subject" toml:"subject"`
	Description string      `yaml:"description" toml:"description"`
	Keywords    KeywordList `yaml:"keywords" toml:"keywords"`
}

// IsZero reports whether no property was set.
func (fm FrontMatter) IsZero() bool {
	return fm.Title == "" && fm.Author == "" && fm.Subject == "" &&
		fm.Description == "" && len(fm.Keywords) == 0
}

// KeywordList accepts either a YAML sequence or a comma-separated string.
type KeywordList []string

// UnmarshalYAML implements the go-yaml InterfaceUnmarshaler.
func (k *KeywordList) UnmarshalYAML(unmarshal func(any) error) error {
	var list []string
	if err := unmarshal(&list); err == nil {
		*k = list
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*k = SplitKeywords(s)
	return nil
}

// SplitKeywords splits a comma-separated list, dropping empty entries.
func SplitKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// frontMatterFormats decodes YAML with go-yaml and TOML with BurntSushi.
var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", unmarshalYAMLBlock),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// unmarshalYAMLBlock tolerates an empty block.
func unmarshalYAMLBlock(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}

// ParseFrontMatter splits a leading metadata block from content.
// Content without a block is returned unchanged with a zero FrontMatter.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &fm, frontMatterFormats...)
	if err != nil {
		return FrontMatter{}, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return fm, string(body), nil
}
