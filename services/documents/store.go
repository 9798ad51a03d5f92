// Package documents stores uploaded reference files (waivers, park
// rules, FAQs) and serves the assistant's document-search tool.
package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"altitude/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	documentKeyPrefix = "doc:"
	documentIndexKey  = "doc:index"
)

// maxMatchedLines caps the matched lines reported per document.
const maxMatchedLines = 5

// storedDocument is the Redis value; unlike the API model it carries
// the raw content.
type storedDocument struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"content"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Store persists uploaded documents in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a document store on the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save stores a document and registers it in the index.
func (s *Store) Save(ctx context.Context, filename string, content []byte) (*models.Document, error) {
	doc := storedDocument{
		ID:         uuid.New().String(),
		Filename:   filename,
		Content:    string(content),
		UploadedAt: time.Now(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if err := s.client.Set(ctx, documentKeyPrefix+doc.ID, data, 0).Err(); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := s.client.SAdd(ctx, documentIndexKey, doc.ID).Err(); err != nil {
		return nil, fmt.Errorf("index document: %w", err)
	}
	return doc.model(), nil
}

func (d storedDocument) model() *models.Document {
	return &models.Document{
		ID:         d.ID,
		Filename:   d.Filename,
		Content:    d.Content,
		UploadedAt: d.UploadedAt,
	}
}

// Get returns one stored document by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Document, error) {
	data, err := s.client.Get(ctx, documentKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("document %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	var stored storedDocument
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return stored.model(), nil
}

// List returns all stored documents, content included.
func (s *Store) List(ctx context.Context) ([]models.Document, error) {
	ids, err := s.client.SMembers(ctx, documentIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// Search scans all stored documents for the query and returns the
// matching excerpts, one block per document.
func (s *Store) Search(ctx context.Context, query string) (string, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "No documents have been uploaded yet. Upload waivers, park rules, or FAQs to enable document search.", nil
	}

	var results []string
	for _, doc := range docs {
		matched := MatchLines(doc.Content, query)
		if len(matched) > 0 {
			results = append(results, fmt.Sprintf("From %s:\n%s", doc.Filename, strings.Join(matched, "\n")))
		}
	}
	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find information about '%s' in the uploaded documents. Please ask me about party packages, pricing, or availability instead!", query), nil
	}
	return strings.Join(results, "\n\n"), nil
}

// MatchLines returns up to maxMatchedLines lines of content containing
// the query, case-insensitively.
func MatchLines(content, query string) []string {
	needle := strings.ToLower(query)
	if needle == "" || !strings.Contains(strings.ToLower(content), needle) {
		return nil
	}
	var matched []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			matched = append(matched, line)
			if len(matched) == maxMatchedLines {
				break
			}
		}
	}
	return matched
}
