// Package verify differential-tests the badge engine against an
// independently maintained reference renderer.
package verify

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/badgemaker/src/badge"
)

// Case is one badge input set, in raw token form.
type Case struct {
	Label      string `yaml:"label" toml:"label" json:"label"`
	Message    string `yaml:"message" toml:"message" json:"message"`
	Color      string `yaml:"color" toml:"color" json:"color"`
	LabelColor string `yaml:"label_color" toml:"label_color" json:"label_color"`
	Style      string `yaml:"style" toml:"style" json:"style"`
}

// Key returns a content address for the case's reference output.
func (c Case) Key() string {
	h := sha256.New()
	var n [binary.MaxVarintLen64]byte
	for _, f := range [...]string{c.Label, c.Message, c.Color, c.LabelColor, c.Style} {
		l := binary.PutUvarint(n[:], uint64(len(f)))
		h.Write(n[:l])
		h.Write([]byte(f))
	}
	h.Write([]byte(engineVersion))
	return hex.EncodeToString(h.Sum(nil))
}

// Build renders the case with the local engine.
func (c Case) Build() (*badge.Badge, error) {
	return badge.NewBuilder().
		Label(c.Label).
		Message(c.Message).
		LabelColorParse(c.LabelColor).
		ColorParse(c.Color).
		StyleParse(c.Style).
		Build()
}

func (c Case) String() string {
	return fmt.Sprintf("%q|%q|%s|%s|%s", c.Label, c.Message, c.LabelColor, c.Color, c.Style)
}

// corpusFile is the on-disk shape of a case list.
type corpusFile struct {
	Cases []Case `yaml:"cases" toml:"cases"`
}

// LoadCorpus reads a case list from YAML (or JSON) or TOML, chosen by
// file extension.
func LoadCorpus(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var f corpusFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("corpus %s has no cases", path)
	}
	return f.Cases, nil
}
