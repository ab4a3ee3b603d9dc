package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CardData describes one card as written by content authors.
type CardData struct {
	ID   string `json:"id" yaml:"id"`
	Rank string `json:"rank" yaml:"rank"`
	Suit string `json:"suit" yaml:"suit"`
}

// DeckData lists the ids of the cards that make up a deck, in deck order.
type DeckData struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	CardIDs []string `json:"cards" yaml:"cards"`
}

// Catalog is the root of a content file.
type Catalog struct {
	Cards []CardData `json:"cards" yaml:"cards"`
	Decks []DeckData `json:"decks" yaml:"decks"`
}

//go:embed standard.yaml
var standardYAML []byte

// LoadJSON loads a catalog from a JSON reader.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads a catalog from a YAML reader.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension (.json, .yaml, .yml).
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", ErrInvalidContent, filepath.Ext(path))
	}
}

// Standard returns the embedded 52-card catalog with the "standard_deck" deck.
func Standard() *Catalog {
	c, err := LoadYAML(bytes.NewReader(standardYAML))
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog: %v", err))
	}
	return c
}
