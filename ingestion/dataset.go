package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/answerbank/core"
	"github.com/poiesic/answerbank/normalize"
)

// DatasetItem is one entry of a curated question/answer dataset. The
// field names follow the JSON export format produced by the dataset
// curation tooling.
type DatasetItem struct {
	Category    string   `json:"category"`
	Question    string   `json:"inferred_question"`
	Response    string   `json:"standardized_response"`
	AltResponse string   `json:"response_text"`
	SourceText  string   `json:"original_text"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Record converts the dataset item into an answer record. Keywords are
// taken from the dataset when present, otherwise derived from the
// question and category text.
func (d DatasetItem) Record() *core.Record {
	keywords := d.Keywords
	if len(keywords) == 0 {
		keywords = normalize.Keywords(strings.TrimSpace(d.Question + " " + d.Category))
	}

	return &core.Record{
		Category:    d.Category,
		Question:    d.Question,
		Response:    d.Response,
		AltResponse: d.AltResponse,
		SourceText:  d.SourceText,
		Keywords:    keywords,
	}
}

// ParseDataset decodes a dataset from JSON. Both the wrapped form
// {"items": [...]} and a bare array of items are accepted.
func ParseDataset(data []byte) ([]DatasetItem, error) {
	var wrapper struct {
		Items []DatasetItem `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Items != nil {
		return wrapper.Items, nil
	}

	var items []DatasetItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	return items, nil
}

// LoadDataset reads and parses a dataset file.
func LoadDataset(path string) ([]DatasetItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(data)
}
