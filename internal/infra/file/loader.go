package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"trivia/internal/domain"
)

// QuestionLoader reads question banks from JSON or YAML files. The bank ID
// is the file path; an empty ID resolves to the default path.
type QuestionLoader struct {
	defaultPath string
}

func NewQuestionLoader(defaultPath string) *QuestionLoader {
	return &QuestionLoader{defaultPath: defaultPath}
}

func (l *QuestionLoader) LoadBank(_ context.Context, bankID string) (domain.Bank, error) {
	path := bankID
	if path == "" {
		path = l.defaultPath
	}
	return LoadBank(path)
}

// LoadBank reads, parses, and validates a question bank file.
func LoadBank(path string) (domain.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Bank{}, fmt.Errorf("%w: %s", domain.ErrBankNotFound, path)
		}
		return domain.Bank{}, fmt.Errorf("read questions file: %w", err)
	}
	bank, err := parseBank(data, path)
	if err != nil {
		return domain.Bank{}, err
	}
	if bank.ID == "" {
		bank.ID = path
	}
	return NormalizeBank(bank)
}

func parseBank(data []byte, path string) (domain.Bank, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLBank(data)
	default:
		return parseJSONBank(data)
	}
}

func parseJSONBank(data []byte) (domain.Bank, error) {
	var bank domain.Bank
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&bank); err != nil {
		return domain.Bank{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return domain.Bank{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return domain.Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return bank, nil
}

func parseYAMLBank(data []byte) (domain.Bank, error) {
	var bank domain.Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&bank); err != nil {
		return domain.Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return domain.Bank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return domain.Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}
