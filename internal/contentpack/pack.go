package contentpack

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/minhokang/baeum/internal/answer"
)

//go:embed schema.json
var schemaDefinition []byte

// Pack is a deck of study material loaded from a JSON manifest.
type Pack struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description,omitempty"`
	Categories  []Category `json:"categories"`
}

// Category groups cards for interleaved selection.
type Category struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Card is one prompt/answer pair. Answer holds answer-spec syntax, parsed
// at load time so authoring mistakes surface before study starts.
type Card struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Answer      string   `json:"answer"`
	Notes       string   `json:"notes,omitempty"`
	UnlockAfter []string `json:"unlock_after,omitempty"`
}

// CardError ties a load-time authoring problem to the card that has it.
type CardError struct {
	CardID string
	Err    error
}

func (e *CardError) Error() string {
	return fmt.Sprintf("card %q: %v", e.CardID, e.Err)
}

func (e *CardError) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func packSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(schemaDefinition, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://pack.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://pack.json")
	})
	return compiledSchema, compileErr
}

// Parse decodes and fully checks a pack manifest. Structural problems are
// reported through the schema; card-level problems (duplicate ids, answer
// specs that do not parse, unlock references to missing cards) are
// collected so an author sees every mistake in one pass.
func Parse(data []byte) (*Pack, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := packSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if err := lintCards(&pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

func lintCards(pack *Pack) error {
	var errs []error
	seen := make(map[string]bool)
	for _, cat := range pack.Categories {
		for _, card := range cat.Cards {
			if seen[card.ID] {
				errs = append(errs, &CardError{CardID: card.ID, Err: errors.New("duplicate card id")})
				continue
			}
			seen[card.ID] = true
			if _, err := answer.ParseSpec(card.Answer); err != nil {
				errs = append(errs, &CardError{CardID: card.ID, Err: err})
			}
		}
	}
	for _, card := range pack.Cards() {
		for _, dep := range card.UnlockAfter {
			if !seen[dep] {
				errs = append(errs, &CardError{
					CardID: card.ID,
					Err:    fmt.Errorf("unlock_after references unknown card %q", dep),
				})
			}
		}
	}
	return errors.Join(errs...)
}

// Cards flattens the pack into a single card list.
func (p *Pack) Cards() []Card {
	return lo.FlatMap(p.Categories, func(cat Category, _ int) []Card {
		return cat.Cards
	})
}

// CategoryOf returns the category name holding the given card.
func (p *Pack) CategoryOf(cardID string) (string, bool) {
	for _, cat := range p.Categories {
		for _, card := range cat.Cards {
			if card.ID == cardID {
				return cat.Name, true
			}
		}
	}
	return "", false
}
