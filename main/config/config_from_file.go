package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/common/log"
)

const (
	JsonFileName   = "config.json"
	ConfigGuideUrl = "Please visit https://github.com/LemoFoundationLtd/basex#configuration-file for detail"

	DefaultAlphabet = "base58"
	DefaultLogLevel = "info"
	MaxWorkers      = 1024
)

var (
	ErrConfig         = errors.New(`file "config.json" format error. ` + ConfigGuideUrl)
	ErrLogLevelConfig = errors.New("config.json content error: unknown logLevel")
	ErrWorkersConfig  = fmt.Errorf("config.json content error: workers must be in [0, %d]", MaxWorkers)
	ErrAlphabetConfig = errors.New("config.json content error: alphabet name can't contain white space")
)

type ConfigFromFile struct {
	Alphabet  string `json:"alphabet"`  // default alphabet of encode and decode
	LogLevel  string `json:"logLevel"`  // sample: "debug"
	LogToFile bool   `json:"logToFile"` // write logs to <datadir>/basex.log too
	Workers   int    `json:"workers"`   // batch pool size, 0 means one per CPU
	Metrics   bool   `json:"metrics"`
}

func DelConfigFile(dir string) error {
	filePath := filepath.Join(dir, JsonFileName)
	return os.Remove(filePath)
}

func WriteConfigFile(dir string, cfg *ConfigFromFile) error {
	result, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	filePath := filepath.Join(dir, JsonFileName)
	return os.WriteFile(filePath, result, 0600)
}

// ReadConfigFile loads dir/config.json. The returned error wraps
// os.ErrNotExist if there is no such file.
func ReadConfigFile(dir string) (*ConfigFromFile, error) {
	filePath := filepath.Join(dir, JsonFileName)
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w\r\n%s", err, ConfigGuideUrl)
	}
	defer file.Close()

	var config ConfigFromFile
	if err = json.NewDecoder(file).Decode(&config); err != nil {
		log.Debug("Parse config file failed", "path", filePath, "err", err)
		return nil, ErrConfig
	}
	return &config, nil
}

// Default returns the configuration used when there is no config file.
func Default() *ConfigFromFile {
	return &ConfigFromFile{
		Alphabet: DefaultAlphabet,
		LogLevel: DefaultLogLevel,
	}
}

// Check validates the values and fills in the defaults of empty fields.
func (c *ConfigFromFile) Check() error {
	if c.Alphabet == "" {
		c.Alphabet = DefaultAlphabet
	}
	for _, r := range c.Alphabet {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return ErrAlphabetConfig
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return ErrLogLevelConfig
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return ErrWorkersConfig
	}
	if _, ok := basex.Preset(c.Alphabet); !ok {
		log.Debug("Default alphabet is not a preset, it is looked up in the registry", "alphabet", c.Alphabet)
	}
	return nil
}
