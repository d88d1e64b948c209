package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vparva/outcome/pkg/payment"
)

// batchDocument is the YAML shape of a payment batch: a name plus the
// raw, not yet validated payment records.
type batchDocument struct {
	Name     string           `yaml:"name"`
	Payments []payment.Record `yaml:"payments"`
}

func loadBatch(path string) (batchDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return batchDocument{}, fmt.Errorf("read batch: %w", err)
	}

	var doc batchDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return batchDocument{}, fmt.Errorf("decode batch %q: %w", path, err)
	}

	if doc.Name == "" {
		return batchDocument{}, fmt.Errorf("batch %q: name is required", path)
	}
	if len(doc.Payments) == 0 {
		return batchDocument{}, fmt.Errorf("batch %q carries no payments", path)
	}

	return doc, nil
}
