// Package config loads quiz definitions from JSON or YAML files and
// normalizes them into the settings the rest of the program runs on.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhik/quizzer/internal/flashcards"
	"github.com/abhik/quizzer/internal/llm"
	"github.com/abhik/quizzer/internal/quizgen"
	"github.com/abhik/quizzer/internal/sessionlog"
)

// Defaults applied to absent fields.
const (
	DefaultTitle      = "General Assessment"
	DefaultRole       = "Act as a helpful tutor."
	DefaultFontFamily = "Arial"
	DefaultFontSize   = 12
	DefaultProvider   = "groq"
	DefaultModel      = "llama3-70b-8192"
)

// Config is a fully normalized quiz definition.
type Config struct {
	Title  string
	Role   string
	Topics []string

	// Kinds holds the enabled question kinds in the order configured.
	Kinds []quizgen.Kind

	Font Font
	AI   AI

	// Questions overrides the plan length when positive.
	Questions int
	Shuffle   bool

	Logger     sessionlog.Config
	Flashcards Flashcards
}

// Font is the display preference block. The terminal front end has no
// use for it, but quiz files carry it and it stays readable here.
type Font struct {
	Family string
	Size   int
}

// AI selects the provider and model for question generation.
type AI struct {
	Provider string
	Model    string
}

// Flashcards parameterizes the flash card feature.
type Flashcards struct {
	Count   int
	DeckDir string
}

// fileConfig mirrors the on-disk quiz file.
type fileConfig struct {
	Title         string         `json:"title" yaml:"title"`
	Role          string         `json:"role" yaml:"role"`
	Topics        []string       `json:"topics" yaml:"topics"`
	Font          *fontSection   `json:"font" yaml:"font"`
	AI            *aiSection     `json:"ai" yaml:"ai"`
	QuestionTypes []string       `json:"question_types" yaml:"question_types"`
	Questions     int            `json:"questions" yaml:"questions"`
	Shuffle       bool           `json:"shuffle" yaml:"shuffle"`
	Logger        *loggerSection `json:"logger" yaml:"logger"`
	Flashcards    *flashSection  `json:"flashcards" yaml:"flashcards"`
}

type fontSection struct {
	Family string `json:"family" yaml:"family"`
	Size   int    `json:"size" yaml:"size"`
}

type aiSection struct {
	Provider string `json:"provider" yaml:"provider"`
	Model    string `json:"model" yaml:"model"`
}

type loggerSection struct {
	Type   string   `json:"type" yaml:"type"`
	LogDir string   `json:"log_dir" yaml:"log_dir"`
	Fields []string `json:"fields" yaml:"fields"`
}

type flashSection struct {
	Count   int    `json:"count" yaml:"count"`
	DeckDir string `json:"deck_dir" yaml:"deck_dir"`
}

// Load reads a quiz definition from path. JSON is the primary format;
// files ending in .yaml or .yml are parsed as YAML. Returned warnings
// are advisory (unknown question types and the like), never fatal.
func Load(path string) (Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return Config{}, nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return normalize(raw)
}

// normalize applies defaults and validates the parsed file.
func normalize(raw fileConfig) (Config, []string, error) {
	if len(raw.Topics) == 0 {
		return Config{}, nil, fmt.Errorf("config must contain a list of 'topics'")
	}
	if raw.Questions < 0 {
		return Config{}, nil, fmt.Errorf("questions must not be negative, got %d", raw.Questions)
	}

	cfg := Config{
		Title:     raw.Title,
		Role:      raw.Role,
		Topics:    raw.Topics,
		Font:      Font{Family: DefaultFontFamily, Size: DefaultFontSize},
		AI:        AI{Provider: DefaultProvider, Model: DefaultModel},
		Questions: raw.Questions,
		Shuffle:   raw.Shuffle,
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Role == "" {
		cfg.Role = DefaultRole
	}

	if raw.Font != nil {
		if raw.Font.Family != "" {
			cfg.Font.Family = raw.Font.Family
		}
		if raw.Font.Size > 0 {
			cfg.Font.Size = raw.Font.Size
		}
	}

	// An ai section replaces the whole default block, so a configured
	// provider starts from its own model default rather than groq's.
	if raw.AI != nil {
		cfg.AI = AI{Provider: raw.AI.Provider, Model: raw.AI.Model}
		if cfg.AI.Provider == "" {
			cfg.AI.Provider = DefaultProvider
		}
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if !llm.KnownProvider(cfg.AI.Provider) {
		return Config{}, nil, fmt.Errorf("unknown AI provider %q (supported: %s)",
			cfg.AI.Provider, strings.Join(llm.KnownProviders(), ", "))
	}

	kinds, warnings := parseKinds(raw.QuestionTypes)
	cfg.Kinds = kinds

	if raw.Logger != nil {
		cfg.Logger = sessionlog.Config{
			Type:   raw.Logger.Type,
			Dir:    raw.Logger.LogDir,
			Fields: raw.Logger.Fields,
		}
	}
	if cfg.Logger.Dir == "" {
		cfg.Logger.Dir = sessionlog.DefaultDir
	}

	if raw.Flashcards != nil {
		cfg.Flashcards = Flashcards{
			Count:   raw.Flashcards.Count,
			DeckDir: raw.Flashcards.DeckDir,
		}
	}
	if cfg.Flashcards.Count <= 0 {
		cfg.Flashcards.Count = flashcards.DefaultCount
	}
	if cfg.Flashcards.DeckDir == "" {
		cfg.Flashcards.DeckDir = flashcards.DefaultDeckDir
	}

	return cfg, warnings, nil
}

// parseKinds maps question_types entries to kinds, keeping the
// configured order and dropping duplicates. Unknown names turn into
// warnings; when nothing valid remains, every kind is enabled.
func parseKinds(names []string) ([]quizgen.Kind, []string) {
	if len(names) == 0 {
		return quizgen.AllKinds(), nil
	}

	var warnings []string
	var kinds []quizgen.Kind
	seen := make(map[quizgen.Kind]bool)
	for _, name := range names {
		kind, err := quizgen.ParseKind(name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Unknown question type '%s' ignored.", name))
			continue
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 {
		warnings = append(warnings, "No valid question types specified. Using all types.")
		return quizgen.AllKinds(), warnings
	}
	return kinds, warnings
}

// ProviderConfig translates the ai section into a provider config.
// Environment and flag overrides layer on top at the CLI.
func (c Config) ProviderConfig() llm.Config {
	pc := llm.DefaultConfig()
	pc.Provider = c.AI.Provider
	return pc.WithModel(c.AI.Model)
}
