package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	LLM     LLMConfig     `yaml:"llm"`
	Tavily  TavilyConfig  `yaml:"tavily"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type HistoryConfig struct {
	// File is the path of the JSON history file. The whole collection is
	// rewritten on every mutation; there is no incremental persistence.
	File string `yaml:"file"`
}

// LLMConfig selects the completion backend shared by all three agents.
type LLMConfig struct {
	Provider        string  `yaml:"provider"` // openai, deepseek or gemini
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	OpenAIAPIKey    string  `yaml:"-"`
	DeepSeekAPIKey  string  `yaml:"-"`
	DeepSeekAPIBase string  `yaml:"deepseek_api_base"`
	GeminiAPIKey    string  `yaml:"-"`
}

type TavilyConfig struct {
	APIKey            string `yaml:"-"`
	APIURL            string `yaml:"api_url"`
	SearchDepth       string `yaml:"search_depth"`
	IncludeAnswer     bool   `yaml:"include_answer"`
	Topic             string `yaml:"topic"`
	IncludeRawContent bool   `yaml:"include_raw_content"`
	MaxResults        int    `yaml:"max_results"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := defaults()

	// load configuration file when present; env vars win over file values
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	applyEnv(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func defaults() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{ListenAddr: ":8080"},
		History: HistoryConfig{File: "./history/content.json"},
		LLM: LLMConfig{
			Provider:        "openai",
			Model:           "gpt-4o",
			Temperature:     0.0,
			MaxTokens:       1024,
			DeepSeekAPIBase: "https://api.deepseek.com",
		},
		Tavily: TavilyConfig{
			APIURL:            "https://api.tavily.com",
			SearchDepth:       "basic",
			IncludeAnswer:     true,
			Topic:             "news",
			IncludeRawContent: true,
			MaxResults:        3,
		},
	}
}

func applyEnv(c *AppConfig) {
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Server.ListenAddr, "LISTEN_ADDR")
	setString(&c.History.File, "HISTORY_FILE")

	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.Model, "LLM_MODEL")
	setFloat(&c.LLM.Temperature, "LLM_TEMPERATURE")
	setInt(&c.LLM.MaxTokens, "LLM_MAX_TOKENS")
	setString(&c.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.LLM.DeepSeekAPIKey, "DEEPSEEK_API_KEY")
	setString(&c.LLM.DeepSeekAPIBase, "DEEPSEEK_API_BASE")
	setString(&c.LLM.GeminiAPIKey, "GEMINI_API_KEY")

	setString(&c.Tavily.APIKey, "TAVILY_API_KEY")
	setString(&c.Tavily.APIURL, "TAVILY_API_URL")
	setString(&c.Tavily.SearchDepth, "TAVILY_SEARCH_DEPTH")
	setBool(&c.Tavily.IncludeAnswer, "TAVILY_INCLUDE_ANSWER")
	setString(&c.Tavily.Topic, "TAVILY_TOPIC")
	setBool(&c.Tavily.IncludeRawContent, "TAVILY_INCLUDE_RAW_CONTENT")
	setInt(&c.Tavily.MaxResults, "TAVILY_MAX_RESULTS")
}

// Validate checks the keys required for the configured collaborators.
// Only the selected LLM provider needs its key; the others may stay unset.
func (c AppConfig) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("config: OPENAI_API_KEY is required for provider openai")
		}
	case "deepseek":
		if c.LLM.DeepSeekAPIKey == "" {
			return fmt.Errorf("config: DEEPSEEK_API_KEY is required for provider deepseek")
		}
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY is required for provider gemini")
		}
	default:
		return fmt.Errorf("config: unknown LLM provider %q", c.LLM.Provider)
	}
	if c.Tavily.APIKey == "" {
		return fmt.Errorf("config: TAVILY_API_KEY is required")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
